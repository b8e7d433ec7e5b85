// Tonal - Perceptual colour ramps and accessible themes
//
// Tonal generates OKLCH colour ramps from seed colours and maps them onto
// light and dark semantic roles that meet WCAG or APCA contrast targets.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
