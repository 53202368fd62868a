package main

import (
	"os"

	"github.com/adanyl0v/go-task-manager/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
