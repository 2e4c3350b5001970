package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spartan "github.com/makluganteng/spartan-ecdsa"
	"github.com/makluganteng/spartan-ecdsa/mocknizk"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proof against a circuit and public inputs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runVerify(); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	spartanCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&circuitFile, "circuit", "", "The serialized circuit instance file.")
	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "The proof file to check.")
	verifyCmd.Flags().StringVar(&publicInputFile, "public-inputs", "", "The packed 32-byte little-endian public input file.")
	verifyCmd.MarkFlagRequired("circuit")
	verifyCmd.MarkFlagRequired("proof")
}

func runVerify() error {
	circuit, err := os.ReadFile(circuitFile)
	if err != nil {
		return err
	}
	proof, err := os.ReadFile(proofFile)
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
	ok, err := p.Verify(circuit, proof, publicInputs)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("proof does not verify")
	}
	fmt.Println("proof verified")
	return nil
}
