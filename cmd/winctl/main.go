package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/winkit/cmd/winctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
