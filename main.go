package main

import (
	"os"

	"github.com/pdxmph/todo-tui/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
