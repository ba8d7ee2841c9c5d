// Package renderer builds markdown reports for the point-of-sale CLI.
// It is pure presentation: every function is a function of its inputs and
// returns a markdown string for the terminal renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/bohex21/kasir"
)

// Products renders the catalog as a markdown table in insertion order.
func Products(products []kasir.Product) string {
	var b strings.Builder
	b.WriteString("# Produk\n\n")
	if len(products) == 0 {
		b.WriteString("The catalog is empty. Run `pos seed` to load the default products, or `pos add` to create one.\n")
		return b.String()
	}
	b.WriteString("| ID | Name | Price |\n")
	b.WriteString("|---:|:-----|------:|\n")
	for _, p := range products {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", p.ID, p.Name, p.Price)
	}
	return b.String()
}

// Cart renders cart lines with their subtotals and the running total.
func Cart(lines []kasir.Line, total kasir.Money) string {
	var b strings.Builder
	b.WriteString("# Keranjang\n\n")
	if len(lines) == 0 {
		b.WriteString("The cart is empty.\n")
		return b.String()
	}
	b.WriteString("| Item | Qty | Price | Subtotal |\n")
	b.WriteString("|:-----|----:|------:|---------:|\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", l.Name, l.Quantity, l.Price, l.Subtotal())
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", total)
	return b.String()
}

// Receipt renders a committed transaction.
func Receipt(tx kasir.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaksi %s\n\n", tx.Time().Format("2006-01-02 15:04:05"))
	if tx.Ref != "" {
		fmt.Fprintf(&b, "Ref: `%s`\n\n", tx.Ref)
	}
	b.WriteString("| Item | Qty | Harga Satuan | Subtotal |\n")
	b.WriteString("|:-----|----:|-------------:|---------:|\n")
	for _, it := range tx.Items {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n", it.Name, it.Quantity, it.UnitPrice, it.Subtotal())
	}
	fmt.Fprintf(&b, "\n**TOTAL TRANSAKSI: %s**\n", tx.Total)
	return b.String()
}

// Transactions renders the ledger newest first. The leading column carries
// each transaction's position in the persisted order: deletion is addressed
// by that index, so the display order must not renumber it.
func Transactions(txs []kasir.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transaksi\n\n")
	if len(txs) == 0 {
		b.WriteString("No transactions recorded yet.\n")
		return b.String()
	}
	b.WriteString("| # | Waktu | Items | Total |\n")
	b.WriteString("|--:|:------|:------|------:|\n")
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		items := make([]string, 0, len(tx.Items))
		for _, it := range tx.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			i, tx.Time().Format("2006-01-02 15:04"), strings.Join(items, ", "), tx.Total)
	}
	return b.String()
}
