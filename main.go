package main

import (
	"fmt"
	"os"

	"github.com/abhisek/learnkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsCheckFailure(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
