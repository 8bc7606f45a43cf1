// Command srgn is a grammar-aware text surgeon: a successor to tr that
// combines regex and tree-sitter scoping with composable actions.
package main

import "github.com/go-srgn/srgn/cmd/srgn/internal/cli"

func main() {
	cli.Execute()
}
