package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a product from the catalog" }
func (*rmCmd) Usage() string {
	return `pos rm <id>

  Deletes the product with the given id. Recorded transactions keep the
  name and price the product was sold at.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the product id to delete.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid product id %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	catalog, _, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	found, err := catalog.Delete(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Printf("No product with id %d, nothing deleted.\n", id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Deleted product %d.\n", id)
	return subcommands.ExitSuccess
}
