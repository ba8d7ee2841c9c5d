package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "populate an empty catalog with the default product set" }
func (*seedCmd) Usage() string {
	return `pos seed

  Populates the catalog with a fixed default set of products when it is
  empty. A non-empty catalog is left untouched.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (*seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, _, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	seeded, err := catalog.SeedIfEmpty()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if seeded {
		fmt.Printf("Seeded %d default products.\n", catalog.Len())
	} else {
		fmt.Printf("Catalog already has %d products, nothing to do.\n", catalog.Len())
	}
	return subcommands.ExitSuccess
}
