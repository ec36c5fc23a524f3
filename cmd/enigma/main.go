// Package main provides the enigma command-line interface.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/forcedentropy/enigma/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
