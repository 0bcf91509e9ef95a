package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every run mode.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common    commonFlags
	output    string
	highlight bool
	watch     bool
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and debug logs")
}

// parseConvertFlags parses conversion flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("topdf", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each input)")
	fs.BoolVar(&f.highlight, "highlight", false, "color source files and fenced code blocks")
	fs.BoolVar(&f.watch, "watch", false, "keep watching input directories for new files")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseFlags skips the program name and parses the remaining arguments.
func parseFlags(args []string) (*convertFlags, []string, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	return parseConvertFlags(args)
}
