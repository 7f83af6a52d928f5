package main

import (
	"os"

	"bazil.org/intmath/internal/cli"
)

//go:generate go run ../../task/gen-imports.go -o commands.gen.go bazil.org/intmath/internal/cli/...

func main() {
	code := cli.Main()
	os.Exit(code)
}
