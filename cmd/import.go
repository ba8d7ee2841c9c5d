package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bohex21/kasir"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import products from a csv or xlsx file" }
func (*importCmd) Usage() string {
	return `pos import <file>

  Reads products from a .csv or .xlsx file and adds them to the catalog.
  Columns are matched by header name (name/nama/produk, price/harga/rp,
  qty/jumlah, subtotal); when no header matches, the first column is the
  name and the second the price. A unit price is derived from subtotal
  and quantity when both are present.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide the file to import.")
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)

	var rows []kasir.Row
	var hasSubtotal bool
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv", ".txt":
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		rows = kasir.ParseDelimited(string(data))
	case ".xlsx", ".xls":
		r, err := os.Open(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer r.Close()
		rows, err = kasir.ParseWorkbook(r)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		hasSubtotal = true
	default:
		fmt.Fprintf(os.Stderr, "Unsupported file type %q, expected .csv or .xlsx.\n", ext)
		return subcommands.ExitUsageError
	}

	catalog, _, err := OpenCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	count, err := catalog.ImportRows(rows, hasSubtotal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if count == 0 {
		fmt.Println("No products recognized in the file, nothing imported.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Imported %d products.\n", count)
	return subcommands.ExitSuccess
}
