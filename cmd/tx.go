package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bohex21/kasir"
	"github.com/bohex21/kasir/renderer"
	"github.com/google/subcommands"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded transactions" }
func (*txCmd) Usage() string {
	return `pos tx

  Lists recorded transactions, newest first. The # column is the entry's
  position in the ledger, used by rmtx.
`
}

func (*txCmd) SetFlags(f *flag.FlagSet) {}

func (*txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	txs, err := kasir.NewLedger(store).Transactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(store, renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
