package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forcedentropy/enigma/pkg/bombe"
	"github.com/forcedentropy/enigma/pkg/enigma"
)

var crackCmd = &cobra.Command{
	Use:   "crack [ciphertext] [crib]",
	Short: "Run the Bombe against one rotor order to recover plugboard wiring",
	Long: `Build a menu from ciphertext/crib and sweep all 17,576 starting
rotations for one fixed rotor order and reflector, reporting every
accepted stop.

Ciphertext and crib may also be supplied via --config as a JSON job
document ({"ciphertext": "...", "crib": "...", "check": true}).

Example:
  enigma crack --rotors I,II,III --reflector B --check "bzhgnocrrtcm" "attackatdawn"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCrack,
}

func init() {
	crackCmd.Flags().String("rotors", "I,II,III", "Rotor order, left to right (e.g. I,II,III)")
	crackCmd.Flags().String("reflector", "B", "Reflector (B or C)")
	crackCmd.Flags().Bool("check", false, "Run the checking machine on every ambiguous stop")
}

func runCrack(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	ciphertext, crib, check, err := resolveCrackJob(cmd, args)
	if err != nil {
		return err
	}

	rotorsCSV, _ := cmd.Flags().GetString("rotors")
	reflectorName, _ := cmd.Flags().GetString("reflector")

	rotors, err := parseRotorNames(rotorsCSV)
	if err != nil {
		return fmt.Errorf("invalid --rotors: %v", err)
	}
	reflector, err := parseReflectorName(reflectorName)
	if err != nil {
		return fmt.Errorf("invalid --reflector: %v", err)
	}

	menu, err := bombe.BuildMenu(ciphertext, crib)
	if err != nil {
		return fmt.Errorf("failed to build menu: %v", err)
	}

	stops, err := sweepOneOrder(menu, rotors, reflector, check)
	if err != nil {
		return err
	}

	printStops(cmd, stops)
	return nil
}

// resolveCrackJob returns (ciphertext, crib, check) either from
// positional args or from a --config job document, matching the
// teacher's createMachineFromConfig pattern: config file takes
// precedence when given.
func resolveCrackJob(cmd *cobra.Command, args []string) (ciphertext, crib string, check bool, err error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		data, readErr := os.ReadFile(configFile)
		if readErr != nil {
			return "", "", false, fmt.Errorf("failed to read config file: %v", readErr)
		}
		req, loadErr := bombe.LoadCrackRequest(data)
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

// sweepOneOrder builds the scrambler cache for one rotor order and
// reflector and runs a full Bombe sweep against menu.
func sweepOneOrder(menu *bombe.Menu, rotors [3]enigma.RotorName, reflector enigma.ReflectorName, check bool) ([]bombe.Stop, error) {
	e, err := enigma.New(
		enigma.WithRotors(rotors[0], rotors[1], rotors[2]),
		enigma.WithReflector(reflector),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build enigma machine: %v", err)
	}

	left, middle, right := e.Rotors()
	scrambler := bombe.NewScrambler(left, middle, right, e.Reflector())
	configuration := fmt.Sprintf("%s %s %s %s", reflector, rotors[0], rotors[1], rotors[2])

	b := bombe.NewBombe(menu, scrambler, configuration, check)
	return b.Sweep()
}

func printStops(cmd *cobra.Command, stops []bombe.Stop) {
	out := cmd.OutOrStdout()
	if len(stops) == 0 {
		fmt.Fprintln(out, "no stops")
		return
	}
	for _, s := range stops {
		fmt.Fprintf(out, "%s  %s  %s\n", s.Indicator, s.Configuration, s.Plugboard.String())
	}
}
