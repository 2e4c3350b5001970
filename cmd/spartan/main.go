// Command spartan proves and verifies statements over circom witness files
// using the reference mocknizk backend.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	circuitFile     string
	witnessFile     string
	publicInputFile string
	proofFile       string
	transcriptLabel string
	verbose         bool
)

var spartanCmd = &cobra.Command{
	Use:   "spartan",
	Short: "Drive a NIZK proving backend over circom witness files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	spartanCmd.PersistentFlags().StringVar(&transcriptLabel, "label", "nizk_example", "The transcript domain label shared by prover and verifier.")
	spartanCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging.")
}

func main() {
	cobra.OnInitialize(func() {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})
	if err := spartanCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
