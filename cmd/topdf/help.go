package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: topdf [flags] <file or directory>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert documents to PDF. Directories are searched for convertible")
	fmt.Fprintln(w, "files; each input becomes <name>.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported inputs:")
	fmt.Fprintln(w, "  markdown, html, json, xml, yaml, toml, csv, xlsx, docx,")
	fmt.Fprintln(w, "  plain text and source code, png/jpg/jpeg/bmp images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (default: next to each input)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "      --highlight       Color source files and fenced code blocks")
	fmt.Fprintln(w, "      --watch           Keep watching input directories for new files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show per-file timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --version         Show version information")
}

// printVersion prints the version banner.
func printVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "topdf %s\n", version)
	fmt.Fprintln(w, "https://github.com/starsunsurpass/topdf")
	fmt.Fprintln(w, "Author: StarsUnsurpass")
}
