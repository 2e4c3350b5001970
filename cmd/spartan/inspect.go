package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makluganteng/spartan-ecdsa/wtns"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the header of a wtns witness file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	spartanCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&witnessFile, "witness", "", "The wtns witness file.")
	inspectCmd.MarkFlagRequired("witness")
}

func runInspect() error {
	data, err := os.ReadFile(witnessFile)
	if err != nil {
		return err
	}
	h, err := wtns.DefaultFormat.ParseHeader(data)
	if err != nil {
		return err
	}
	fmt.Printf("version:       %d\n", h.Version)
	fmt.Printf("element bytes: %d\n", h.FieldByteSize)
	fmt.Printf("elements:      %d\n", h.NumElements)
	fmt.Printf("modulus:       0x%s\n", h.Modulus.Text(16))
	return nil
}
