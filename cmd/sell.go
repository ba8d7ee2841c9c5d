package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bohex21/kasir"
	"github.com/bohex21/kasir/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of one or more products" }
func (*sellCmd) Usage() string {
	return `pos sell <id[:qty]>...

  Builds a cart from the given product ids and commits it as a single
  transaction, printing the receipt. Repeating an id adds to the same
  cart line.
  Example: pos sell 1 3:2
`
}

func (*sellCmd) SetFlags(f *flag.FlagSet) {}

// parseSellArg splits an "id[:qty]" argument. The quantity defaults to 1
// and must be positive.
func parseSellArg(arg string) (id int64, qty int, err error) {
	idStr, qtyStr, hasQty := strings.Cut(arg, ":")
	id, err = strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid product id %q", idStr)
	}
	qty = 1
	if hasQty {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil || qty < 1 {
			return 0, 0, fmt.Errorf("invalid quantity %q", qtyStr)
		}
	}
	return id, qty, nil
}

func (*sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one product id to sell.")
		return subcommands.ExitUsageError
	}

	catalog, store, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cart := kasir.NewCart()
	for _, arg := range f.Args() {
		id, qty, err := parseSellArg(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		for i := 0; i < qty; i++ {
			if err := cart.Add(catalog, id); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
	}

	ledger := kasir.NewLedger(store)
	tx, err := ledger.Commit(cart.Lines())
	var perr *kasir.PersistenceError
	switch {
	case errors.As(err, &perr):
		// The sale happened but the ledger write was rejected: warn, the
		// receipt below may not be recorded.
		fmt.Fprintf(os.Stderr, "Warning: %v. This sale may not be recorded.\n", perr)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cart.Clear()

	printMarkdown(store, renderer.Receipt(tx))
	return subcommands.ExitSuccess
}
