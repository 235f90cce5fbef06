package main

import (
	"fmt"
	"os"
)

func main() {
	state := &appState{}
	rootCmd := newRootCmd(state)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsmark:", err)
		os.Exit(1)
	}
}
