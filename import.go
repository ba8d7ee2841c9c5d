package kasir

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one record of tabular input. Column order matters: heuristic
// detection picks the first matching column, and the name/price fallbacks
// use the first and second columns. Go maps do not iterate in order, so the
// column list is kept alongside the field map.
type Row struct {
	Columns []string
	Fields  map[string]string
}

// Get returns the raw value of a column and whether the column exists in
// this row.
func (r Row) Get(col string) (string, bool) {
	v, ok := r.Fields[col]
	return v, ok
}

// at returns the value of the i-th column, or "" when out of range.
func (r Row) at(i int) string {
	if i < 0 || i >= len(r.Columns) {
		return ""
	}
	return r.Fields[r.Columns[i]]
}

type columnRole int

const (
	roleName columnRole = iota
	rolePrice
	roleQty
	roleSubtotal
)

// columnRules maps header heuristics to roles. Headers are unpredictable
// across locales and spreadsheet exports (Indonesian and English mixed), so
// matching is deliberately permissive: the first column whose lower-cased
// name matches the pattern wins, evaluated in column order.
var columnRules = []struct {
	role    columnRole
	pattern *regexp.Regexp
}{
	{roleName, regexp.MustCompile(`name|nama|product|produk`)},
	{rolePrice, regexp.MustCompile(`price|harga|rp|amount|price_id`)},
	{roleQty, regexp.MustCompile(`qty|kuantitas|quantity|jumlah|jml`)},
	{roleSubtotal, regexp.MustCompile(`subtotal|sub_total|total`)},
}

// detectColumns resolves column roles against a row's headers. Quantity and
// subtotal are only looked for on spreadsheet sources, where line totals
// may replace unit prices. A role with no matching column stays undetected.
func detectColumns(r Row, hasSubtotal bool) map[columnRole]string {
	detected := make(map[columnRole]string)
	for _, rule := range columnRules {
		if !hasSubtotal && (rule.role == roleQty || rule.role == roleSubtotal) {
			continue
		}
		for _, col := range r.Columns {
			if rule.pattern.MatchString(strings.ToLower(col)) {
				detected[rule.role] = col
				break
			}
		}
	}
	return detected
}

var (
	commasAndSpaces = regexp.MustCompile(`[,\s]+`)
	nonNumeric      = regexp.MustCompile(`[^0-9.\-]`)
	thousandsDots   = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
)

// sanitizeNumber turns a raw price cell into a number. Commas and
// whitespace are stripped; dot-grouped digits ("5.000", "1.234.567") are
// read as Indonesian thousands notation; with several irregular dots all
// but the last are dropped and the last is kept as the decimal point; any
// remaining non-numeric characters ("Rp") are removed. Unparseable input
// yields 0.
//
// A price with exactly one dot not grouping three digits ("12.5") is
// preserved as a decimal. This heuristic misreads sources that genuinely
// mix both conventions; that ambiguity is inherent to the input data.
func sanitizeNumber(raw string) decimal.Decimal {
	s := commasAndSpaces.ReplaceAllString(raw, "")
	s = nonNumeric.ReplaceAllString(s, "")
	if thousandsDots.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	} else if n := strings.Count(s, "."); n > 1 {
		s = strings.Replace(s, ".", "", n-1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ImportRows normalizes tabular rows into catalog entries and returns how
// many were imported. hasSubtotal is true only for spreadsheet sources,
// where quantity/subtotal columns may carry line totals instead of unit
// prices.
//
// Per row: the name falls back to the first column when no name column was
// detected or its value is empty; the raw price falls back to the second
// column when no price column was detected or the cell is missing. When
// both a subtotal and a quantity are present and positive, the unit price
// is derived as round(subtotal/quantity), overriding the price cell. Rows
// with no resolvable name are skipped and not counted.
//
// Import is row-independent: rows rejected by validation are skipped and
// the rest still commit. A persistence failure stops the import and the
// returned count reports the rows already committed.
func (c *Catalog) ImportRows(rows []Row, hasSubtotal bool) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	detected := detectColumns(rows[0], hasSubtotal)

	added := 0
	for _, row := range rows {
		var name string
		if col, ok := detected[roleName]; ok {
			name = row.Fields[col]
		}
		if name == "" {
			name = row.at(0)
		}
		if strings.TrimSpace(name) == "" {
			continue
		}

		priceRaw, havePrice := "", false
		if col, ok := detected[rolePrice]; ok {
			priceRaw, havePrice = row.Get(col)
		}
		if !havePrice {
			priceRaw = row.at(1)
		}
		price := sanitizeNumber(priceRaw)

		if hasSubtotal {
			subCol, haveSub := detected[roleSubtotal]
			qtyCol, haveQty := detected[roleQty]
			if haveSub && haveQty {
				subRaw := strings.TrimSpace(row.Fields[subCol])
				qtyRaw := strings.TrimSpace(row.Fields[qtyCol])
				if subRaw != "" && qtyRaw != "" {
					subtotal := sanitizeNumber(subRaw)
					qty := sanitizeNumber(qtyRaw)
					if subtotal.IsPositive() && qty.IsPositive() {
						price = subtotal.Div(qty).Round(0)
					}
				}
			}
		}

		if _, err := c.Add(strings.TrimSpace(name), M(price)); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				continue // row-scoped: skip the bad row, keep importing
			}
			return added, err
		}
		added++
	}
	return added, nil
}

// ParseDelimited splits delimited text into rows for ImportRows. Lines are
// split on CR/LF and blank lines dropped; the separator is auto-detected on
// the first line (semicolon, then tab, then comma); the first line is the
// header and each remaining line is zipped positionally against it, with
// every field trimmed. Missing trailing fields read as empty.
func ParseDelimited(text string) []Row {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	sep := ","
	switch {
	case strings.Contains(lines[0], ";"):
		sep = ";"
	case strings.Contains(lines[0], "\t"):
		sep = "\t"
	}

	headers := strings.Split(lines[0], sep)
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cols := strings.Split(line, sep)
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			var v string
			if i < len(cols) {
				v = strings.TrimSpace(cols[i])
			}
			fields[h] = v
		}
		rows = append(rows, Row{Columns: headers, Fields: fields})
	}
	return rows
}
