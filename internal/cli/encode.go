package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [message]",
	Short: "Encode (or decode) a message on a configured Enigma machine",
	Long: `Encode a message through a three-rotor Enigma machine. Since the
machine is reciprocal, running the output back through an identically
configured machine recovers the original message.

Example:
  enigma encode --rotors I,II,III --reflector B --rings 0,0,0 --rotations 0,0,0 --plugboard "ar gk ox" "attackatdawn"`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().String("rotors", "I,II,III", "Rotor order, left to right (e.g. I,II,III)")
	encodeCmd.Flags().String("reflector", "B", "Reflector (B or C)")
	encodeCmd.Flags().String("rings", "0,0,0", "Ring offsets, left to right")
	encodeCmd.Flags().String("rotations", "0,0,0", "Starting rotations, left to right")
	encodeCmd.Flags().String("plugboard", "", "Plugboard pairs, e.g. \"ar gk ox\"")
}

func runEncode(cmd *cobra.Command, args []string) error {
	setupVerbose(cmd)

	rotors, _ := cmd.Flags().GetString("rotors")
	reflector, _ := cmd.Flags().GetString("reflector")
	rings, _ := cmd.Flags().GetString("rings")
	rotations, _ := cmd.Flags().GetString("rotations")
	plugboardSpec, _ := cmd.Flags().GetString("plugboard")

	machine, err := buildEnigma(rotors, reflector, rings, rotations, plugboardSpec)
	if err != nil {
		return fmt.Errorf("failed to build enigma machine: %v", err)
	}

	out, err := machine.Encode(args[0])
	if err != nil {
		return fmt.Errorf("encode failed: %v", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
