package main

import (
	"os"

	"github.com/AnatoleLucet/frp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
