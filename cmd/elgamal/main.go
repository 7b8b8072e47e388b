package main

import (
	"fmt"
	"os"

	"github.com/shona13/ElGamal/cmd/elgamal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
