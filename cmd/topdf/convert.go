package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starsunsurpass/topdf"
	"github.com/starsunsurpass/topdf/internal/config"
	"github.com/starsunsurpass/topdf/internal/fileutil"
	"github.com/starsunsurpass/topdf/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no input specified")
	ErrWatchNoDir = errors.New("watch mode requires a directory input")
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	closeLog, err := logging.Init(logging.Options{
		Verbose: cfg.Log.Verbose,
		Quiet:   flags.common.quiet,
		Dir:     cfg.Log.Dir,
	})
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	if len(positionalArgs) == 0 {
		return ErrNoInput
	}

	// Discover files to convert
	files, dirs, err := discoverInputs(positionalArgs)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if flags.watch && len(dirs) == 0 {
		return ErrWatchNoDir
	}
	if len(files) == 0 && !flags.watch {
		return fmt.Errorf("no convertible files in %s", strings.Join(positionalArgs, ", "))
	}

	if cfg.Output.DefaultDir != "" {
		if err := fileutil.EnsureDir(cfg.Output.DefaultDir); err != nil {
			return err
		}
	}

	converter := buildConverter(cfg)
	orc := topdf.NewOrchestrator(converter)
	orc.SetOutputDir(cfg.Output.DefaultDir)
	orc.Add(files...)

	failedCount := 0
	if orc.ConvertAll() {
		failedCount = pumpBatch(orc, flags.common.quiet, flags.common.verbose, env)
	}

	if flags.watch {
		watchFailed, err := watchAndConvert(ctx, orc, dirs, flags, env)
		failedCount += watchFailed
		if err != nil {
			return err
		}
	}

	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the named config, or the default search locations
// when no name is given.
func loadConfig(flags *convertFlags) (*config.Config, error) {
	if flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	return config.LoadDefault()
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.highlight {
		cfg.Convert.Highlight = true
	}
	if flags.common.verbose {
		cfg.Log.Verbose = true
	}
}

// buildConverter assembles the converter from the resolved configuration.
func buildConverter(cfg *config.Config) *topdf.Converter {
	var opts []topdf.Option
	if cfg.Convert.Highlight {
		opts = append(opts, topdf.WithHighlighting())
	}
	return topdf.NewConverter(resolveFont(cfg), opts...)
}

// resolveFont probes the configured font paths, falling back to the
// built-in probe list and then to the embedded face.
func resolveFont(cfg *config.Config) *topdf.Font {
	paths := cfg.Fonts.Paths
	if len(paths) == 0 {
		paths = topdf.DefaultFontPaths
	}

	font, err := topdf.ProbeFonts(paths)
	if err != nil {
		slog.Warn("no usable system font, using embedded face", "error", err)
		return topdf.EmbeddedFont()
	}
	slog.Debug("using font", "name", font.Name())
	return font
}
