package main

import (
	"context"
	"os"

	"github.com/goliatone/go-relnotes/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
