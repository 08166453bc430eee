// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/woozymasta/pathrules"

	"github.com/woozymasta/unixar/ar"
	"github.com/woozymasta/unixar/cpio"
)

var extractCommand = &cli.Command{
	Name:      "extract",
	Aliases:   []string{"x"},
	Usage:     "extract archive entries to a directory",
	ArgsUsage: "<archive>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: formatAuto,
			Usage: "archive format (auto, cpio, ar)",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "output directory",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "extract only entries matching pattern (repeatable)",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of extraction workers (0 means GOMAXPROCS)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "print extracted entries",
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

		rules := make([]pathrules.Rule, 0, len(clicontext.StringSlice("include")))
		for _, pattern := range clicontext.StringSlice("include") {
			rules = append(rules, pathrules.Rule{
				Action:  pathrules.ActionInclude,
				Pattern: pattern,
			})
		}

		outDir := clicontext.String("out")
		workers := clicontext.Int("workers")
		verbose := clicontext.Bool("verbose")

		if format == formatAr {
			r, err := ar.NewReader(data)
			if err != nil {
				return err
			}

			return r.Extract(clicontext.Context, outDir, ar.ExtractOptions{
				Rules:      rules,
				MaxWorkers: workers,
				OnEntryDone: func(hdr ar.Header, written int64, outputPath string) {
					if verbose {
						fmt.Println(hdr.Name)
					}
				},
			})
		}

		r, err := cpio.NewReader(data)
		if err != nil {
			return err
		}

		return r.Extract(clicontext.Context, outDir, cpio.ExtractOptions{
			Rules:      rules,
			MaxWorkers: workers,
			OnEntryDone: func(hdr cpio.Header, written int64, outputPath string) {
				if verbose {
					fmt.Println(hdr.Name)
				}
			},
		})
	},
}
