package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rafaelleal24/inventory/internal/adapters/cli"
	"github.com/rafaelleal24/inventory/internal/adapters/jsonfile"
	"github.com/rafaelleal24/inventory/internal/core/service"
)

// The interactive shell keeps the default noop logger so structured log
// output does not interleave with the menu.
func main() {
	inventoryService := service.NewInventoryService(jsonfile.NewStore(), nil, nil)

	shell := cli.NewShell(inventoryService, os.Stdin, os.Stdout)
	if err := shell.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
