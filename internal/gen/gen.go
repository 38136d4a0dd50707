// Package gen builds random folder trees filled with random files, giving
// the sort command realistic input to work on.
package gen

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// message is written into every generated document file.
const message = "Hello, Привіт"

// nameLength is how many runes a generated file name has.
const nameLength = 8

// nameRunes is the alphabet generated names draw from: Latin and Ukrainian
// letters plus filesystem-legal punctuation, so sorting gets exercised with
// non-ASCII and awkward names.
var nameRunes = []rune(
	"()+,-0123456789;=@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz{}~" +
		"абвгдеєжзиіїйклмнопрстуфхцчшщьюяАБВГДЕЄЖЗИІЇЙКЛМНОПРСТУФХЦЧШЩЬЮЯ")

// folderNames are the segment names nested chains draw from. temp and
// folder dominate the weighting so chains overlap and share prefixes.
var (
	folderNames   = []string{"temp", "folder", "dir", "tmp", "OMG", "is_it_true", "no_way", "find_it"}
	folderWeights = []int{10, 10, 1, 1, 1, 1, 1, 1}
)

var (
	documentExts = []string{".doc", ".docx", ".txt", ".pdf", ".xlsx", ".pptx"}
	imageExts    = []string{".jpeg", ".png", ".jpg"}
)

const imageSide = 100

// Kind selects what sort of file an op creates.
type Kind int

const (
	KindDocument Kind = iota
	KindArchive
	KindImage
)

// Op is one planned file creation.
type Op struct {
	Dir  string
	Kind Kind
}

// Plan lays out a whole generation run before any filesystem write happens,
// so callers know the total work up front.
type Plan struct {
	Target string
	Dirs   []string
	Ops    []Op
}

// Generator builds random trees from a seeded source; the same seed
// reproduces the same tree.
type Generator struct {
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Plan lays out forests nested folder chains under target, each 5-8
// segments deep, and assigns every planned directory 2-4 random files.
// forests <= 0 picks 2-5 chains at random. target must not exist yet.
func (g *Generator) Plan(target string, forests int) (*Plan, error) {
	if _, err := os.Stat(target); err == nil {
		return nil, fmt.Errorf("target directory %s already exists", target)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check target: %w", err)
	}

	if forests <= 0 {
		forests = 2 + g.rng.IntN(4)
	}

	plan := &Plan{Target: target}
	seen := make(map[string]bool)
	for i := 0; i < forests; i++ {
		depth := 5 + g.rng.IntN(4)
		dir := target
		for j := 0; j < depth; j++ {
			dir = filepath.Join(dir, g.folderName())
			if !seen[dir] {
				seen[dir] = true
				plan.Dirs = append(plan.Dirs, dir)
			}
		}
	}

	for _, dir := range plan.Dirs {
		for n := 2 + g.rng.IntN(3); n > 0; n-- {
			plan.Ops = append(plan.Ops, Op{Dir: dir, Kind: Kind(g.rng.IntN(3))})
		}
	}

	return plan, nil
}

// Execute materializes a plan. onStep, when non-nil, runs after every
// created file. Archives pack whatever regular files their directory holds
// at creation time, so earlier ops feed later archives.
func (g *Generator) Execute(ctx context.Context, plan *Plan, onStep func()) error {
	for _, dir := range plan.Dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}
	}

	for _, op := range plan.Ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.create(op); err != nil {
			return err
		}
		if onStep != nil {
			onStep()
		}
	}
	return nil
}

func (g *Generator) create(op Op) error {
	switch op.Kind {
	case KindArchive:
		return g.writeArchive(op.Dir)
	case KindImage:
		return g.writeImage(op.Dir)
	default:
		return g.writeDocument(op.Dir)
	}
}

// folderName picks a weighted random segment name.
func (g *Generator) folderName() string {
	total := 0
	for _, w := range folderWeights {
		total += w
	}
	n := g.rng.IntN(total)
	for i, w := range folderWeights {
		if n < w {
			return folderNames[i]
		}
		n -= w
	}
	return folderNames[len(folderNames)-1]
}

// fileName draws a random 8-rune name without extension.
func (g *Generator) fileName() string {
	runes := make([]rune, nameLength)
	for i := range runes {
		runes[i] = nameRunes[g.rng.IntN(len(nameRunes))]
	}
	return string(runes)
}

func (g *Generator) writeDocument(dir string) error {
	ext := documentExts[g.rng.IntN(len(documentExts))]
	path := filepath.Join(dir, g.fileName()+ext)
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (g *Generator) writeArchive(dir string) error {
	name := g.fileName()
	switch g.rng.IntN(3) {
	case 0:
		return writeZip(filepath.Join(dir, name+".zip"), dir)
	case 1:
		return writeTar(filepath.Join(dir, name+".tar"), dir, false)
	default:
		return writeTar(filepath.Join(dir, name+".tar.gz"), dir, true)
	}
}

// writeImage writes a small RGB noise image.
func (g *Generator) writeImage(dir string) error {
	ext := imageExts[g.rng.IntN(len(imageExts))]

	img := image.NewRGBA(image.Rect(0, 0, imageSide, imageSide))
	for y := 0; y < imageSide; y++ {
		for x := 0; x < imageSide; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(g.rng.IntN(256)),
				G: uint8(g.rng.IntN(256)),
				B: uint8(g.rng.IntN(256)),
				A: 255,
			})
		}
	}

	out, err := os.Create(filepath.Join(dir, g.fileName()+ext))
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	defer out.Close()

	if ext == ".png" {
		if err := png.Encode(out, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return nil
	}
	if err := jpeg.Encode(out, img, nil); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return nil
}

// writeZip packs the regular files already present in dir into a zip file.
func writeZip(path, dir string) error {
	files, err := regularFiles(dir)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, name := range files {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if err := copyInto(w, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

// writeTar packs the regular files already present in dir into a tar file,
// gzip-compressed when gzipped is set.
func writeTar(path, dir string, gzipped bool) error {
	files, err := regularFiles(dir)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	var gz *gzip.Writer
	w := io.Writer(out)
	if gzipped {
		gz = gzip.NewWriter(out)
		w = gz
	}
	tw := tar.NewWriter(w)

	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read %s for archive: %w", name, err)
		}
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(data))}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to finish archive: %w", err)
		}
	}
	return nil
}

func copyInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read %s for archive: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read %s for archive: %w", path, err)
	}
	return nil
}

// regularFiles lists the plain files directly inside dir.
func regularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
