package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bohex21/kasir"
	"github.com/google/subcommands"
)

type rmtxCmd struct{}

func (*rmtxCmd) Name() string     { return "rmtx" }
func (*rmtxCmd) Synopsis() string { return "delete a transaction from the ledger" }
func (*rmtxCmd) Usage() string {
	return `pos rmtx <index>

  Deletes the transaction at the given ledger position (the # column of
  pos tx). Later entries shift down by one, so re-run pos tx before
  deleting again.
`
}

func (*rmtxCmd) SetFlags(f *flag.FlagSet) {}

func (*rmtxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the transaction index to delete.")
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	found, err := kasir.NewLedger(store).DeleteAt(index)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Printf("No transaction at index %d, nothing deleted.\n", index)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Deleted transaction %d.\n", index)
	return subcommands.ExitSuccess
}
