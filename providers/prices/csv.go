package prices

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// PriceList maps every known name variant to a price. Lookup returns the
// price for any variant folded through Normalize.
type PriceList struct {
	// Entries are the rows as parsed, one per player.
	Entries []Entry

	byVariant map[string]float64
}

// Entry is one parsed price row.
type Entry struct {
	Name  string
	Price float64
}

// Lookup finds the price for a name, trying the exact form, the folded form
// and every generated variant.
func (l PriceList) Lookup(name string) (float64, bool) {
	if p, ok := l.byVariant[strings.ToLower(name)]; ok {
		return p, true
	}
	if p, ok := l.byVariant[Normalize(name)]; ok {
		return p, true
	}
	for _, v := range Variants(name) {
		if p, ok := l.byVariant[v]; ok {
			return p, true
		}
	}
	return 0, false
}

// Len returns the number of distinct price rows.
func (l PriceList) Len() int { return len(l.Entries) }

var intOnly = regexp.MustCompile(`^\d+$`)
var numericCell = regexp.MustCompile(`^[\d.,]+$`)
var priceChars = regexp.MustCompile(`[^\d.]`)

// priceFormat is detected from the first parsable data row and then held
// for the rest of the file.
type priceFormat int

const (
	formatUnknown priceFormat = iota
	// formatSplitDecimal is three columns: name, whole part, tenths.
	// "Makar C.,30,9" means 30.9.
	formatSplitDecimal
	// formatSingleCell is two columns with the price in one cell, comma or
	// dot decimal separator.
	formatSingleCell
)

// ParseCSV reads a price list. Both known encodings are supported; the
// format is auto-detected from the first data row. Header rows, comment
// rows and a leading BOM are tolerated.
func ParseCSV(r io.Reader) (PriceList, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return PriceList{}, fmt.Errorf("prices: read: %w", err)
	}
	content := strings.TrimPrefix(string(raw), "\ufeff")

	var lines []string
	for _, ln := range strings.Split(content, "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	reader.FieldsPerRecord = -1

	list := PriceList{byVariant: make(map[string]float64)}
	format := formatUnknown

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return PriceList{}, fmt.Errorf("prices: csv: %w", err)
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		first := strings.ToLower(strings.TrimSpace(row[0]))
		if isHeader(first) || strings.HasPrefix(first, "//") || strings.HasPrefix(first, "#") {
			continue
		}

		name := strings.TrimSpace(row[0])
		if format == formatUnknown && len(row) >= 2 {
			format = detectFormat(row)
		}

		price, ok := parsePrice(row, format)
		if !ok {
			continue
		}
		list.add(name, price)
	}
	if list.Len() == 0 {
		return PriceList{}, fmt.Errorf("prices: no price rows found")
	}
	return list, nil
}

func isHeader(cell string) bool {
	for _, h := range []string{"hráč", "hrac", "player", "name", "cena", "price"} {
		if strings.Contains(cell, h) {
			return true
		}
	}
	return false
}

func detectFormat(row []string) priceFormat {
	if len(row) >= 3 && intOnly.MatchString(strings.TrimSpace(row[1])) && intOnly.MatchString(strings.TrimSpace(row[2])) {
		return formatSplitDecimal
	}
	if numericCell.MatchString(strings.TrimSpace(row[1])) {
		return formatSingleCell
	}
	return formatUnknown
}

func parsePrice(row []string, format priceFormat) (float64, bool) {
	if (format == formatSplitDecimal || format == formatUnknown) &&
		len(row) >= 3 && intOnly.MatchString(strings.TrimSpace(row[1])) && intOnly.MatchString(strings.TrimSpace(row[2])) {
		p, err := strconv.ParseFloat(strings.TrimSpace(row[1])+"."+strings.TrimSpace(row[2]), 64)
		if err == nil {
			return p, true
		}
	}
	if (format == formatSingleCell || format == formatUnknown) && len(row) >= 2 {
		cell := strings.ReplaceAll(strings.TrimSpace(row[1]), ",", ".")
		cell = priceChars.ReplaceAllString(cell, "")
		if p, err := strconv.ParseFloat(cell, 64); err == nil {
			return p, true
		}
	}
	return 0, false
}

func (l *PriceList) add(name string, price float64) {
	l.Entries = append(l.Entries, Entry{Name: name, Price: price})
	l.byVariant[strings.ToLower(name)] = price
	for _, v := range Variants(name) {
		if _, exists := l.byVariant[v]; !exists {
			l.byVariant[v] = price
		}
	}
}
