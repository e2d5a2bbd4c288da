// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/vector/doc"
	"github.com/spf13/cobra"
)

var replayRender bool

func init() {
	replayCmd.Flags().BoolVarP(&replayRender, "render", "r", false, "Print the markup after every step")
}

var replayCmd = &cobra.Command{
	Use:   "replay <document.yaml> <edits.yaml>",
	Short: "Apply a script of document edits and update the view after each",
	Long: `replay lays out a document, then applies each edit of the script in
turn, letting the view settle in between. The final markup is printed
at the end, or after every step with --render.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, d, err := openContext(args[0])
		if err != nil {
			return err
		}
		defer c.Close()
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		edits, err := doc.ReadEdits(f)
		f.Close()
		if err != nil {
			return err
		}
		if err := drain(c); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for i, e := range edits {
			if err := d.Apply(e); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if err := drain(c); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if replayRender && i < len(edits)-1 {
				fmt.Fprintf(w, "<!-- step %d -->\n", i+1)
				if err := c.Render().Encode(w); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
		}
		if err := c.Render().Encode(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
		if printStats {
			writeStats(cmd.ErrOrStderr(), c)
		}
		return nil
	},
}
