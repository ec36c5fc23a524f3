package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forcedentropy/enigma/pkg/bombe"
)

var farmCrackCmd = &cobra.Command{
	Use:   "farm-crack [ciphertext] [crib]",
	Short: "Run the Bombe across all 60 rotor orders",
	Long: `Build a menu from ciphertext/crib and sweep all 60 rotor orders (reflector
B only) in parallel, one goroutine per order, reporting every accepted
stop across the whole farm.

Ciphertext and crib may also be supplied via --config as a JSON job
document, same shape as crack's.

Example:
  enigma farm-crack --check "bzhgnocrrtcm" "attackatdawn"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runFarmCrack,
}

func init() {
	farmCrackCmd.Flags().Bool("check", false, "Run the checking machine on every ambiguous stop")
}

func runFarmCrack(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	ciphertext, crib, check, err := resolveFarmJob(cmd, args)
	if err != nil {
		return err
	}

	menu, err := bombe.BuildMenu(ciphertext, crib)
	if err != nil {
		return fmt.Errorf("failed to build menu: %v", err)
	}

	stops, err := bombe.Farm(menu, check)
	if err != nil {
		return fmt.Errorf("farm sweep failed: %v", err)
	}

	printStops(cmd, stops)
	return nil
}

func resolveFarmJob(cmd *cobra.Command, args []string) (ciphertext, crib string, check bool, err error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		data, readErr := os.ReadFile(configFile)
		if readErr != nil {
			return "", "", false, fmt.Errorf("failed to read config file: %v", readErr)
		}
		req, loadErr := bombe.LoadFarmRequest(data)
		if loadErr != nil {
			return "", "", false, loadErr
		}
		return req.Ciphertext, req.Crib, req.Check, nil
	}

	if len(args) != 2 {
		return "", "", false, fmt.Errorf("expected ciphertext and crib arguments, or --config")
	}
	checkFlag, _ := cmd.Flags().GetBool("check")
	return args[0], args[1], checkFlag, nil
}
