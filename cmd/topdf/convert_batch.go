package main

import (
	"fmt"
	"time"

	"github.com/starsunsurpass/topdf"
)

// pumpBatch drains the running batch, printing one line per file as
// results arrive, and returns the number of failed entries. Completion
// order is arbitrary, so lines may not match the input order.
func pumpBatch(orc *topdf.Orchestrator, quiet, verbose bool, env *Environment) int {
	failed := 0

	for orc.IsConverting() {
		done := <-orc.Completions()
		orc.Apply(done)

		entry := orc.Files()[done.Index]
		if entry.Status == topdf.StatusError {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", entry.Path, entry.Err)
			continue
		}

		if quiet {
			continue
		}

		outputPath := topdf.OutputPath(entry.Path, orc.OutputDir())
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", entry.Path, outputPath, done.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
		}
	}

	_, total := orc.Progress()
	if !quiet && total > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", total-failed, failed)
	}

	return failed
}
