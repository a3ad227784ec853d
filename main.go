package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.microglot.org/wcps.go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, cli.ErrRejected) {
			fmt.Fprintln(os.Stderr, "wcpsc:", err.Error())
		}
		os.Exit(1)
	}
}
