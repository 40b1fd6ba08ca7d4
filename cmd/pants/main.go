package main

import (
	"os"

	"github.com/marijncv/pants/internal/pkg/cli"
	"github.com/marijncv/pants/internal/pkg/env"
)

func main() {
	workingDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	// Run command
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, env.FromOs(), workingDir)
	os.Exit(cmd.Execute())
}
