// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/unixar

// Command unixar lists, extracts and builds cpio and ar archives.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Archive format names accepted by the --format flag.
const (
	formatAuto = "auto"
	formatCpio = "cpio"
	formatAr   = "ar"
)

func main() {
	app := &cli.App{
		Name:  "unixar",
		Usage: "inspect, extract and build cpio and ar archives",
		Commands: []*cli.Command{
			listCommand,
			extractCommand,
			createCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "unixar: %s\n", err)
		os.Exit(1)
	}
}

// detectFormat resolves the requested format, sniffing the ar global magic
// when the caller asked for auto detection.
func detectFormat(requested string, data []byte) (string, error) {
	switch requested {
	case formatCpio, formatAr:
		return requested, nil
	case "", formatAuto:
	default:
		return "", fmt.Errorf("unknown format %q", requested)
	}

	if len(data) >= 8 && string(data[:8]) == "!<arch>\n" {
		return formatAr, nil
	}

	return formatCpio, nil
}
