package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bohex21/kasir"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a product to the catalog" }
func (*addCmd) Usage() string {
	return `pos add <name> <price>

  Adds a product to the catalog. The id is assigned automatically.
  Example: pos add "Pulsa 5.000" 7000
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (*addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Please provide a product name and a price.")
		return subcommands.ExitUsageError
	}
	price, err := kasir.ParsePrice(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	catalog, _, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := catalog.Add(f.Arg(0), price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added product %d: %s (%s)\n", p.ID, p.Name, p.Price)
	return subcommands.ExitSuccess
}
