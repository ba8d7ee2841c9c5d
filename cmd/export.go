package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bohex21/kasir"
	"github.com/google/subcommands"
)

type exportCmd struct {
	xlsx   bool
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transaction ledger" }
func (*exportCmd) Usage() string {
	return `pos export [-xlsx] [-o <file>]

  Exports all recorded transactions. By default writes csv to stdout;
  with -xlsx writes a styled workbook to transactions_<date>.xlsx.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.xlsx, "xlsx", false, "write an xlsx workbook instead of csv")
	f.StringVar(&c.output, "o", "", "output file (default stdout for csv)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if len(txs) == 0 {
		fmt.Println("No transactions to export.")
		return subcommands.ExitSuccess
	}

	if c.xlsx {
		name := c.output
		if name == "" {
			name = kasir.ExportFilename(time.Now())
		}
		w, err := os.Create(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
		if err := kasir.ExportXLSX(w, txs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Exported %d transactions to %s.\n", len(txs), name)
		return subcommands.ExitSuccess
	}

	w := os.Stdout
	if c.output != "" {
		w, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}
	if err := kasir.ExportCSV(w, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d transactions to %s.\n", len(txs), c.output)
	}
	return subcommands.ExitSuccess
}
