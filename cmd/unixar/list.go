// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/woozymasta/unixar/ar"
	"github.com/woozymasta/unixar/cpio"
)

var listCommand = &cli.Command{
	Name:      "list",
	Aliases:   []string{"ls"},
	Usage:     "list archive entries",
	ArgsUsage: "<archive>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: formatAuto,
			Usage: "archive format (auto, cpio, ar)",
		},
		&cli.BoolFlag{
			Name:  "human",
			Usage: "print human-readable sizes",
		},
	},
	Action: func(clicontext *cli.Context) error {
		path := clicontext.Args().First()
		if path == "" {
			return errors.New("archive path is required")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		format, err := detectFormat(clicontext.String("format"), data)
		if err != nil {
			return err
		}

		human := clicontext.Bool("human")
		w := tabwriter.NewWriter(os.Stdout, 1, 8, 2, ' ', 0)
		defer func() { _ = w.Flush() }()

		if format == formatAr {
			r, err := ar.NewReader(data)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%s archive, %s variant\n", format, r.Variant())
			for _, e := range r.Entries() {
				fmt.Fprintf(w, "%v\t%s\t%s\t%s\n",
					os.FileMode(e.Mode)&os.ModePerm,
					formatSize(e.Size, human),
					time.Unix(e.ModTime, 0).Format(time.DateOnly),
					e.Name,
				)
			}

			return nil
		}

		r, err := cpio.NewReader(data)
		if err != nil {
			return err
		}

		for _, e := range r.Entries() {
			name := e.Name
			if e.Mode.IsSymlink() {
				name += " -> " + e.Linkname
			}

			fmt.Fprintf(w, "%v\t%s\t%s\t%s\n",
				e.FileInfo().Mode(),
				formatSize(e.Size, human),
				time.Unix(e.ModTime, 0).Format(time.DateOnly),
				name,
			)
		}

		return nil
	},
}

// formatSize renders one size column value.
func formatSize(size int64, human bool) string {
	if human {
		return humanize.IBytes(uint64(size))
	}

	return fmt.Sprintf("%d", size)
}
