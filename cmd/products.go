package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bohex21/kasir/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the catalog" }
func (*productsCmd) Usage() string {
	return `pos products

  Lists all products in the catalog.
`
}

func (*productsCmd) SetFlags(f *flag.FlagSet) {}

func (*productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, store, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(store, renderer.Products(catalog.Products()))
	return subcommands.ExitSuccess
}
