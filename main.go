// Command hw05 analyzes word frequencies in texts and sorts files into
// extension-named folders, both on fixed-size worker pools.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickolas-z/goit-cs-hw-05/internal/freq"
	"github.com/nickolas-z/goit-cs-hw-05/internal/gen"
	"github.com/nickolas-z/goit-cs-hw-05/internal/runs"
	"github.com/nickolas-z/goit-cs-hw-05/internal/sortdir"
	"github.com/nickolas-z/goit-cs-hw-05/models"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled (Ctrl+C). Exiting the application.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hw05",
		Usage: "concurrent word-frequency analyzer and file sorting tools",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
		},
		Commands: []*cli.Command{
			wordfreqCommand(),
			sortCommand(),
			genCommand(),
			runsCommand(),
		},
	}
}

func wordfreqCommand() *cli.Command {
	return &cli.Command{
		Name:      "wordfreq",
		Aliases:   []string{"wf"},
		Usage:     "count word frequencies in a text from a URL or file",
		ArgsUsage: "[SOURCE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Usage: "URL or file path to analyze (a positional SOURCE wins)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 4,
				Usage: "number of counting workers",
			},
			&cli.IntFlag{
				Name:  "top",
				Value: 10,
				Usage: "how many top words to rank",
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "write a PNG bar chart to this path",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "output format: text, json, or yaml",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Value: "wf-results",
				Usage: "directory for the fetch cache and run history",
			},
			&cli.StringFlag{
				Name:  "max-age",
				Value: "24h",
				Usage: "serve cached fetches younger than this",
			},
			&cli.BoolFlag{
				Name:  "force-fetch",
				Usage: "bypass the fetch cache",
			},
			&cli.BoolFlag{
				Name:  "drop-stopwords",
				Usage: "drop common words of the detected language before ranking",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "skip recording the run in the history database",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: models.DefaultConfigFile,
				Usage: "YAML config file with analyzer defaults",
			},
		},
		Action: freq.WordFreqAction,
	}
}

func sortCommand() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "copy files into extension-named folders of DST",
		ArgsUsage: "SRC DST",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Value: 4,
				Usage: "number of copy workers",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: "text",
				Usage: "output format: text, json, or yaml",
			},
		},
		Action: sortdir.SortAction,
	}
}

func genCommand() *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "generate a random folder tree with test files",
		ArgsUsage: "TARGET",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "forests",
				Usage: "how many nested folder chains to grow (default: random 2-5)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed for a reproducible tree",
			},
		},
		Action: gen.GenAction,
	}
}

func runsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "inspect recorded wordfreq runs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: models.DefaultConfigFile,
				Usage: "YAML config file with analyzer defaults",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "directory holding the run history database",
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list recorded runs, most recent first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to list",
					},
				},
				Action: runs.ListAction,
			},
			{
				Name:      "show",
				Usage:     "show one run and its recorded top words",
				ArgsUsage: "RUN_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "limit how many recorded words to show (default: all)",
					},
				},
				Action: runs.ShowAction,
			},
		},
	}
}
