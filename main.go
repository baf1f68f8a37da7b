package main

import (
	"os"

	"github.com/SamuraiBarbi/local-ai-packaged/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
