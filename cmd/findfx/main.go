package main

import (
	"fmt"
	"os"

	"github.com/termfx/findfx/internal/model"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if ce, ok := err.(model.CLIError); ok {
			fmt.Fprintf(os.Stderr, "findfx: %s\n", ce.Error())
		} else {
			fmt.Fprintf(os.Stderr, "findfx: %v\n", err)
		}
		os.Exit(model.ExitError)
	}
}
