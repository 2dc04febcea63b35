package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mosaic"
	"github.com/katalvlaran/mosaic/internal/config"
	"github.com/katalvlaran/mosaic/render"
	"github.com/katalvlaran/mosaic/scan"
)

// app carries flag values and the logger between cobra hooks.
type app struct {
	configPath  string
	patternPath string
	workers     int
	start       int
	verbose     bool
	render      bool
	outPath     string
	scale       int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mosaic",
		Short: "Reassemble scrambled image tiles and measure the rough water",
		Long: `mosaic reads square tiles that were rotated and mirrored at random,
fits them back together along matching borders, strips the borders,
and searches the resulting image for a pattern (the sea monster by default).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "mosaic.yaml", "YAML configuration file (optional)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	solve := &cobra.Command{
		Use:   "solve <input-file>",
		Short: "Print the corner checksum and the roughness of an input file",
		Args:  cobra.ExactArgs(1),
		RunE:  a.solve,
	}
	solve.Flags().StringVar(&a.patternPath, "pattern", "", "file holding the pattern mask ('#' = required pixel)")
	solve.Flags().IntVar(&a.workers, "workers", 0, "classifier goroutines (0 = GOMAXPROCS)")
	solve.Flags().IntVar(&a.start, "start", 0, "corner tile placed top-left (default: first corner in the input)")
	solve.Flags().BoolVar(&a.render, "render", false, "print the oriented image with pattern pixels marked O")
	solve.Flags().StringVarP(&a.outPath, "out", "o", "", "write the oriented image to a .png or .tiff file")
	solve.Flags().IntVar(&a.scale, "scale", 8, "pixels per cell for --out")

	root.AddCommand(solve)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = buildLogger(cfg, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func buildLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

func (a *app) solve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mask, err := a.mask()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := []mosaic.Option{
		mosaic.WithLogger(a.logger),
		mosaic.WithWorkers(a.cfg.Workers),
	}
	if a.start != 0 {
		opts = append(opts, mosaic.WithStart(a.start))
	}
	res, err := mosaic.Solve(ctx, mosaic.SplitBlocks(string(data)), mask, opts...)
	if err != nil {
		return err
	}
	a.logger.Info("solved",
		zap.String("run", res.RunID),
		zap.String("input", args[0]),
		zap.Int64("checksum", res.Checksum),
		zap.Int("roughness", res.Roughness))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "checksum: %d\n", res.Checksum)
	fmt.Fprintf(out, "roughness: %d\n", res.Roughness)
	if a.render {
		fmt.Fprintf(out, "\n%s", scan.Highlight(res.Scan))
	}
	if a.outPath != "" {
		return a.write(res)
	}

	return nil
}

func (a *app) write(res *mosaic.Result) error {
	format, err := render.FormatFor(a.outPath)
	if err != nil {
		return err
	}
	if a.scale < 1 {
		return fmt.Errorf("%w: got %d", render.ErrScale, a.scale)
	}
	f, err := os.Create(a.outPath)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := render.Encode(f, res.Scan, a.scale, format); err != nil {
		_ = f.Close()
		return err
	}
	a.logger.Debug("wrote image", zap.String("path", a.outPath), zap.String("format", string(format)))

	return f.Close()
}

// mask prefers --pattern over the configured pattern.
func (a *app) mask() (scan.Mask, error) {
	if a.patternPath == "" {
		return a.cfg.Mask()
	}
	data, err := os.ReadFile(a.patternPath)
	if err != nil {
		return scan.Mask{}, fmt.Errorf("failed to read pattern: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	return scan.ParseMask(strings.Split(text, "\n"))
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
