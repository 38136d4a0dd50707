package gen

import (
	"fmt"
	"os"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/internal/common"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

// GenAction builds a random folder tree under TARGET so the sort command
// has something realistic to work on.
func GenAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one TARGET argument, got %d", c.NArg())
	}
	target := c.Args().First()

	seed := uint64(time.Now().UnixNano())
	if c.IsSet("seed") {
		seed = c.Uint64("seed")
	}

	g := New(seed)
	plan, err := g.Plan(target, c.Int("forests"))
	if err != nil {
		return err
	}

	logger.Info("generating test data",
		"target", target, "seed", seed, "folders", len(plan.Dirs), "files", len(plan.Ops))

	bar := progressbar.NewOptions64(int64(len(plan.Ops)),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(!c.Bool("quiet")),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
	)
	if err := g.Execute(c.Context, plan, func() { _ = bar.Add(1) }); err != nil {
		return err
	}

	fmt.Printf("Generated %d files across %d folders in %s\n", len(plan.Ops), len(plan.Dirs), target)
	fmt.Printf("\nTip: Use 'hw05 sort %s sorted' to arrange them by extension\n", target)
	return nil
}
