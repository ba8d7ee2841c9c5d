package kasir

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []Transaction {
	return []Transaction{
		{
			Timestamp: testNow.UnixMilli(),
			Items: []Item{
				{ProductID: 1, Name: "Pulsa 10.000", Quantity: 2, UnitPrice: M(12000)},
				{ProductID: 3, Name: "Paket Data 5GB", Quantity: 1, UnitPrice: M(60000)},
			},
			Total: M(84000),
		},
		{
			Timestamp: testNow.Add(time.Hour).UnixMilli(),
			Items: []Item{
				{ProductID: 2, Name: "Pulsa 20.000", Quantity: 1, UnitPrice: M(21000)},
			},
			Total: M(21000),
		},
	}
}

func TestExportCSV(t *testing.T) {
	var b strings.Builder
	require.NoError(t, ExportCSV(&b, sampleTransactions()))

	want := `"waktu","items","total"
"2024-05-01T10:30:00.000Z","Pulsa 10.000 x2; Paket Data 5GB x1","84000"
"2024-05-01T11:30:00.000Z","Pulsa 20.000 x1","21000"
`
	assert.Equal(t, want, b.String())
}

func TestExportCSVQuoting(t *testing.T) {
	txs := []Transaction{{
		Timestamp: testNow.UnixMilli(),
		Items:     []Item{{Name: `Paket "Hemat", 1GB`, Quantity: 1, UnitPrice: M(5000)}},
		Total:     M(5000),
	}}
	var b strings.Builder
	require.NoError(t, ExportCSV(&b, txs))

	// a standard csv reader must recover the awkward name intact
	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Paket "Hemat", 1GB x1`, records[1][1])
	assert.Equal(t, "5000", records[1][2])
}

func TestExportCSVRoundTrip(t *testing.T) {
	txs := sampleTransactions()
	var b strings.Builder
	require.NoError(t, ExportCSV(&b, txs))

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(txs)+1)
	assert.Equal(t, []string{"waktu", "items", "total"}, records[0])
	for i, tx := range txs {
		assert.Equal(t, tx.Total.Amount().String(), records[i+1][2])
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "transactions_2024-05-01.xlsx", got)
}

func TestExportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(&buf, sampleTransactions()))

	// read the workbook back through the import decoder
	rows, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"No.", "Waktu", "Item", "Qty", "Harga Satuan", "Subtotal"}, rows[0].Columns)

	item, _ := rows[0].Get("Item")
	assert.Equal(t, "Pulsa 10.000", item)
	waktu, _ := rows[0].Get("Waktu")
	assert.NotEmpty(t, waktu, "first item row carries the timestamp")
	waktu, _ = rows[1].Get("Waktu")
	assert.Empty(t, waktu, "following item rows leave the timestamp blank")

	// each transaction ends with a summary row
	var totals int
	for _, r := range rows {
		if item, _ := r.Get("Item"); item == "TOTAL TRANSAKSI" {
			totals++
		}
	}
	assert.Equal(t, 2, totals)
}

func TestExportXLSXEmptyWorkbookRead(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("not a workbook"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
