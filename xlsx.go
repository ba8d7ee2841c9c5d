package kasir

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// exportSheet is the sheet name of the spreadsheet export.
const exportSheet = "Transaksi"

// timestampDisplay is the human-facing timestamp layout used on spreadsheet
// rows, day first as the original locale displays it.
const timestampDisplay = "02/01/2006 15:04:05"

// ParseWorkbook decodes the first sheet of a spreadsheet into rows for
// ImportRows. The first row is the header; short rows are padded with empty
// cells. A workbook the decoder cannot read yields a *ParseError and zero
// rows.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Source: "workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Source: "workbook", Err: errors.New("no sheets")}
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Source: sheets[0], Err: err}
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			var v string
			if i < len(line) {
				v = line[i]
			}
			fields[h] = v
		}
		rows = append(rows, Row{Columns: headers, Fields: fields})
	}
	return rows, nil
}

// ExportXLSX renders transactions as a styled workbook: one row per item
// (the timestamp only on the first), then a TOTAL TRANSAKSI summary row and
// a blank separator per transaction.
func ExportXLSX(w io.Writer, txs []Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	header := []any{"No.", "Waktu", "Item", "Qty", "Harga Satuan", "Subtotal"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}
	for i, width := range []float64{5, 20, 35, 8, 15, 15} {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"217B79"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "F1", style); err != nil {
		return err
	}

	rowNum := 2
	for txIdx, tx := range txs {
		for itemIdx, it := range tx.Items {
			waktu := ""
			if itemIdx == 0 {
				waktu = tx.Time().Format(timestampDisplay)
			}
			cells := []any{
				txIdx + 1,
				waktu,
				it.Name,
				it.Quantity,
				it.UnitPrice.Amount().InexactFloat64(),
				it.Subtotal().Amount().InexactFloat64(),
			}
			if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
				return err
			}
			rowNum++
		}
		if len(tx.Items) > 0 {
			cells := []any{"", "", "TOTAL TRANSAKSI", "", "", tx.Total.Amount().InexactFloat64()}
			if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
				return err
			}
			rowNum += 2 // summary row, then a blank separator row
		}
	}

	_, err = f.WriteTo(w)
	return err
}
