package kasir

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// timestampISO is the exported timestamp layout, ISO-8601 with millis.
const timestampISO = "2006-01-02T15:04:05.000Z07:00"

// ExportCSV renders transactions as delimited text: a `waktu,items,total`
// header, then one row per transaction with the UTC ISO-8601 timestamp, the
// items flattened to "name xQty" joined by "; ", and the total. Every field
// is quoted with embedded quotes doubled, so separators inside item names
// never break the cell boundaries.
func ExportCSV(w io.Writer, txs []Transaction) error {
	var b strings.Builder
	writeCSVRow(&b, []string{"waktu", "items", "total"})
	for _, tx := range txs {
		items := make([]string, 0, len(tx.Items))
		for _, it := range tx.Items {
			items = append(items, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}
		writeCSVRow(&b, []string{
			tx.Time().UTC().Format(timestampISO),
			strings.Join(items, "; "),
			tx.Total.Amount().String(),
		})
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// ExportFilename names the spreadsheet export after the given day.
func ExportFilename(t time.Time) string {
	return "transactions_" + t.Format("2006-01-02") + ".xlsx"
}
