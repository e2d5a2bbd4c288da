// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vectorview loads vector documents, lays them out through the
// derived view engine, and prints the resulting markup.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cogentcore.org/vector/doc"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/view"
	"github.com/spf13/cobra"
)

var (
	settingsFile string
	timeout      time.Duration
	printStats   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vectorview",
		Short: "Render vector documents through the derived view engine",
		Long: `vectorview loads a YAML vector document, builds its view tree,
lays it out, and prints the rendered markup.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "TOML file with view settings")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Maximum time to wait for the layout to settle")
	rootCmd.PersistentFlags().BoolVar(&printStats, "stats", false, "Print scheduler statistics to stderr")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openContext loads the document and returns a view context for it,
// configured from the settings file if one is given.
func openContext(filename string) (*view.Context, *doc.Document, error) {
	d, err := doc.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	c := view.NewDocumentContext(d)
	if settingsFile != "" {
		if err := c.Settings.Open(settingsFile); err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("loading settings: %w", err)
		}
		c.Ops = ppath.FillRuleOps{Segments: c.Settings.FlattenSegments}
	}
	return c, d, nil
}

// drain runs the scheduler of c until it settles or the timeout passes.
func drain(c *view.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.Drain(ctx)
}

func writeStats(w io.Writer, c *view.Context) {
	s := c.Stats
	fmt.Fprintf(w, "views=%d ticks=%d layouts=%d renders=%d effects=%d loads=%d stale=%d failed=%d ops=%d skipped=%d binds=%d\n",
		c.NumViews(), s.Ticks, s.Layouts, s.Renders, s.Effects, s.Loads, s.StaleLoads, s.FailedLoads, s.OpsRun, s.OpsSkipped, s.Binds)
}
