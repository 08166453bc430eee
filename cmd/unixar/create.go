// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/woozymasta/unixar/ar"
	"github.com/woozymasta/unixar/cpio"
)

var createCommand = &cli.Command{
	Name:      "create",
	Aliases:   []string{"c"},
	Usage:     "build an archive from files or a directory tree",
	ArgsUsage: "<archive> <input>...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: formatCpio,
			Usage: "archive format (cpio, ar)",
		},
		&cli.StringFlag{
			Name:  "variant",
			Value: "gnu",
			Usage: "ar variant (common, bsd, gnu)",
		},
		&cli.BoolFlag{
			Name:  "checksum",
			Usage: "write cpio checksum variant entries",
		},
	},
	Action: func(clicontext *cli.Context) error {
		if clicontext.NArg() < 2 {
			return errors.New("archive path and at least one input are required")
		}

		outPath := clicontext.Args().First()
		inputs := clicontext.Args().Tail()

		switch clicontext.String("format") {
		case formatCpio:
			return createCpio(outPath, inputs, clicontext.Bool("checksum"))
		case formatAr:
			variant, err := parseVariant(clicontext.String("variant"))
			if err != nil {
				return err
			}

			return createAr(outPath, inputs, variant)
		default:
			return fmt.Errorf("unknown format %q", clicontext.String("format"))
		}
	},
}

// parseVariant maps the --variant flag value to an archive dialect.
func parseVariant(name string) (ar.Variant, error) {
	switch name {
	case "common":
		return ar.Common, nil
	case "bsd":
		return ar.BSD, nil
	case "gnu":
		return ar.GNU, nil
	default:
		return ar.Common, fmt.Errorf("unknown ar variant %q", name)
	}
}

// createCpio walks every input tree and serializes it into one archive.
func createCpio(outPath string, inputs []string, withChecksum bool) error {
	b := cpio.NewBuilder()
	for _, input := range inputs {
		root := filepath.Clean(input)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			return appendCpioPath(b, root, path, d, withChecksum)
		})
		if err != nil {
			return err
		}
	}

	return os.WriteFile(outPath, b.Finalize(), 0o644)
}

// appendCpioPath appends one walked filesystem node to the builder.
func appendCpioPath(b *cpio.Builder, root, path string, d fs.DirEntry, withChecksum bool) error {
	fi, err := d.Info()
	if err != nil {
		return err
	}

	var link string
	if fi.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(path); err != nil {
			return err
		}
	}

	hdr, err := cpio.FileInfoHeader(fi, link)
	if err != nil {
		return err
	}

	name, err := filepath.Rel(filepath.Dir(root), path)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(name)

	var content []byte
	if fi.Mode().IsRegular() {
		if content, err = os.ReadFile(path); err != nil {
			return err
		}

		if withChecksum {
			hdr.Checksum = cpio.Sum(content)
		}
	}

	b.Append(*hdr, content)
	return nil
}

// createAr archives the named regular files in argument order.
func createAr(outPath string, inputs []string, variant ar.Variant) error {
	b := ar.NewBuilder(variant)
	for _, input := range inputs {
		fi, err := os.Stat(input)
		if err != nil {
			return err
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("input %s is not a regular file", input)
		}

		hdr, err := ar.FileInfoHeader(fi)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(input)
		if err != nil {
			return err
		}

		b.Append(*hdr, content)
	}

	return os.WriteFile(outPath, b.Finalize(), 0o644)
}
