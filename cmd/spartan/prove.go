package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spartan "github.com/makluganteng/spartan-ecdsa"
	"github.com/makluganteng/spartan-ecdsa/mocknizk"
)

var proveOutFile string

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate a proof from a circuit, a wtns witness and public inputs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runProve(); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	spartanCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringVar(&circuitFile, "circuit", "", "The serialized circuit instance file.")
	proveCmd.Flags().StringVar(&witnessFile, "witness", "", "The wtns witness file.")
	proveCmd.Flags().StringVar(&publicInputFile, "public-inputs", "", "The packed 32-byte little-endian public input file.")
	proveCmd.Flags().StringVar(&proveOutFile, "out", "", "The proof output file.")
	proveCmd.MarkFlagRequired("circuit")
	proveCmd.MarkFlagRequired("witness")
	proveCmd.MarkFlagRequired("out")
}

func runProve() error {
	circuit, err := os.ReadFile(circuitFile)
	if err != nil {
		return err
	}
	witness, err := os.ReadFile(witnessFile)
	if err != nil {
		return err
	}
	var publicInputs []byte
	if publicInputFile != "" {
		if publicInputs, err = os.ReadFile(publicInputFile); err != nil {
			return err
		}
	}

	p := spartan.New(mocknizk.New(), spartan.WithTranscriptLabel([]byte(transcriptLabel)))
	proof, err := p.Prove(circuit, witness, publicInputs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(proveOutFile, proof, 0644); err != nil {
		return err
	}
	fmt.Printf("proof written to %s (%d bytes)\n", proveOutFile, len(proof))
	return nil
}
