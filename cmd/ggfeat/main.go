// Command ggfeat renders annotation columns from SAM and GFF files to a
// PNG image.
//
// Each argument names a column as style=path, where style is an id in the
// style sheet. Files ending in .sam are read as alignments; everything
// else is read as GFF.
//
//	ggfeat -styles styles.toml -start 1000 -end 6000 -bump \
//		genes=genes.gff est=est.sam coverage=cov.gff
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/sync/errgroup"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/canvas"
	"github.com/gogpu/gg-genome/composite"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/focus"
	"github.com/gogpu/gg-genome/load"
	"github.com/gogpu/gg-genome/style"
)

type column struct {
	id       string
	path     string
	style    *style.Style
	features []*feature.Feature
}

// config holds the command line.
type config struct {
	styles   string
	ref      string
	refName  string
	start    int
	end      int
	height   int
	gap      float64
	bump     bool
	wobble   int
	selected string
	output   string
	verbose  bool
	columns  []string
}

var errUsage = errors.New("ggfeat: a style sheet and at least one column are required")

// parseFlags parses the command line arguments after the program name.
func parseFlags(args []string) (*config, error) {
	c := &config{}
	fs := flag.NewFlagSet("ggfeat", flag.ContinueOnError)
	fs.StringVar(&c.styles, "styles", "", "TOML style sheet (required)")
	fs.StringVar(&c.ref, "ref", "", "reference FASTA for splice checks")
	fs.StringVar(&c.refName, "refname", "", "reference sequence name (default first)")
	fs.IntVar(&c.start, "start", 1, "first base shown")
	fs.IntVar(&c.end, "end", 0, "last base shown (default end of data)")
	fs.IntVar(&c.height, "height", 1000, "image height")
	fs.Float64Var(&c.gap, "gap", 4, "space between columns")
	fs.BoolVar(&c.bump, "bump", false, "bump overlapping features into lanes")
	fs.IntVar(&c.wobble, "wobble", composite.DefaultMaxWobble, "splice coordinate tolerance when compositing")
	fs.StringVar(&c.selected, "select", "", "id of a feature to select")
	fs.StringVar(&c.output, "output", "features.png", "output file")
	fs.BoolVar(&c.verbose, "v", false, "log debug output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.styles == "" || fs.NArg() == 0 {
		fs.Usage()
		return nil, errUsage
	}
	c.columns = fs.Args()
	return c, nil
}

// canvasOptions returns the context options set by the command line.
func (c *config) canvasOptions(view canvas.View) []canvas.Option {
	return []canvas.Option{canvas.WithView(view), canvas.WithMaxWobble(c.wobble)}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	genome.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sheet, err := style.Load(cfg.styles)
	if err != nil {
		log.Fatalf("Failed to load styles: %v", err)
	}

	cols, err := parseColumns(cfg.columns, sheet)
	if err != nil {
		log.Fatal(err)
	}
	if err := loadColumns(context.Background(), cols); err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	if cfg.end == 0 {
		cfg.end = lastBase(cols)
	}
	if cfg.end < cfg.start {
		log.Fatalf("Empty view %d-%d", cfg.start, cfg.end)
	}
	view := canvas.View{
		Start:         cfg.start,
		End:           cfg.end,
		PixelsPerBase: float64(cfg.height) / float64(cfg.end-cfg.start+1),
	}

	opts := cfg.canvasOptions(view)
	for name, c := range sheet.Highlight {
		g, ok := focus.ParseGroup(name)
		if !ok {
			log.Fatalf("Unknown highlight group %q", name)
		}
		opts = append(opts, canvas.WithFocusColours(g, c))
	}
	if cfg.ref != "" {
		f, err := os.Open(cfg.ref)
		if err != nil {
			log.Fatalf("Failed to open reference: %v", err)
		}
		dna, err := load.ReadFASTA(f, cfg.refName)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, canvas.WithDNA(dna))
	}

	ctx := canvas.New(opts...)
	for _, c := range cols {
		fs := ctx.NewFeatureSet(c.id, c.style, cfg.start, cfg.end)
		fs.Add(c.features...)
		fs.Bump(cfg.bump)
		fs.Rebuild()
		genome.Logger().Info("column",
			"id", c.id,
			"features", len(c.features),
			"displayed", len(fs.Display()),
			"composites", len(fs.Composites()))
	}
	if cfg.selected != "" {
		if !selectFeature(ctx, cfg.selected) {
			log.Fatalf("No feature %q", cfg.selected)
		}
	}
	width := ctx.Layout(cfg.gap, cfg.gap) + cfg.gap

	dc := gg.NewContext(int(width), int(view.Height()))
	dc.ClearWithColor(gg.White)
	if err := ctx.Paint(dc); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	if err := dc.SavePNG(cfg.output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	ctx.Close()
	genome.Logger().Info("saved", "path", cfg.output, "width", dc.Width(), "height", dc.Height())
}

// parseColumns splits style=path arguments and looks the styles up.
func parseColumns(args []string, sheet *style.Sheet) ([]*column, error) {
	cols := make([]*column, 0, len(args))
	for _, arg := range args {
		id, path, ok := strings.Cut(arg, "=")
		if !ok || id == "" || path == "" {
			return nil, fmt.Errorf("column %q: want style=path", arg)
		}
		st := sheet.Lookup(id)
		if st == nil {
			return nil, fmt.Errorf("column %q: no style %q", arg, id)
		}
		cols = append(cols, &column{id: id, path: path, style: st})
	}
	return cols, nil
}

// loadColumns reads every column's file, one goroutine per column.
func loadColumns(ctx context.Context, cols []*column) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range cols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fs, err := readFile(c.path, c.style)
			if err != nil {
				return fmt.Errorf("%s: %w", c.path, err)
			}
			c.features = fs
			return nil
		})
	}
	return g.Wait()
}

func readFile(path string, st *style.Style) ([]*feature.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".sam") {
		return load.ReadSAM(f, st)
	}
	return load.ReadGFF(f, st)
}

// selectFeature selects the feature with the given id, making its column
// the hot column.
func selectFeature(ctx *canvas.Context, id string) bool {
	for _, fs := range ctx.FeatureSets() {
		for _, f := range fs.Features() {
			if f.ID == id {
				fs.Select(f, feature.SubPart{})
				return true
			}
		}
	}
	return false
}

func lastBase(cols []*column) int {
	last := 0
	for _, c := range cols {
		for _, f := range c.features {
			last = max(last, f.X2)
		}
	}
	return last
}
