// Package cli provides the command-line interface for the enigma
// module: the historical three-rotor machine and its Bombe
// cryptanalysis engine (spec §6's CLI surface, kept out of the core
// library per §1).
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	enigmaversion "github.com/forcedentropy/enigma"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "A three-rotor Enigma machine and Turing-Welchman Bombe cryptanalysis engine",
	Long: `enigma simulates the historical three-rotor Enigma machine (rotors I-V,
reflectors B and C) and the Turing-Welchman Bombe used to recover its
plugboard wiring and rotor positions from a known crib.

Examples:
  enigma encode --rotors I,II,III --reflector B --rings 0,0,0 --rotations 0,0,0 "attackatdawn"
  enigma crack --rotors I,II,III --reflector B "bzhgnocrrtcm" "attackatdawn"
  enigma farm-crack "bzhgnocrrtcm" "attackatdawn"
  enigma enigma`,
	Version: enigmaversion.GetVersion(),
}

// Execute runs the root command and handles errors.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(farmCrackCmd)
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Job configuration file path (crack/farm-crack)")
}

// setupVerbose prints a notice when verbose mode is on, matching the
// teacher's convention that core packages stay silent and only the CLI
// shell prints anything.
func setupVerbose(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Println("verbose mode enabled")
	}
}
