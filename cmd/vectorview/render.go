// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var renderOutput string

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the markup to this file instead of stdout")
}

var renderCmd = &cobra.Command{
	Use:   "render <document.yaml>",
	Short: "Lay out a document and print its markup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := openContext(args[0])
		if err != nil {
			return err
		}
		defer c.Close()
		if err := drain(c); err != nil {
			return err
		}
		var w io.Writer = cmd.OutOrStdout()
		if renderOutput != "" {
			f, err := os.Create(renderOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
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
