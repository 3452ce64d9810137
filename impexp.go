package tradebook

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to read host tradebook files into raw trade
// records. Parsing and validation of the values themselves happens in
// Normalize; importers only locate the fields.

// Column synonyms accepted in tradebook headers, all compared lowercase.
var (
	instrumentColumns = []string{"symbol", "instrument", "ticker"}
	timestampColumns  = []string{"trade date", "trade_date", "date", "timestamp"}
	sideColumns       = []string{"trade type", "trade_type", "type", "side"}
	quantityColumns   = []string{"quantity", "qty"}
	priceColumns      = []string{"price", "avg. price", "rate"}
)

// ImportCSV reads a broker tradebook CSV into raw trade records.
//
// Broker exports carry a free-form preamble (account details, disclaimers)
// before the actual header row, so the reader scans forward until it finds a
// row naming at least an instrument, a quantity and a price column. Column
// names are matched case-insensitively against common synonyms
// (Symbol/Instrument/Ticker, Trade Date/Date, Trade Type/Side, Quantity/Qty,
// Price). Blank rows are skipped.
func ImportCSV(r io.Reader) ([]RawTradeRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // preamble rows have arbitrary shapes

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read tradebook csv: %w", err)
	}

	header := -1
	var columns csvColumns
	for i, row := range rows {
		if c, ok := findColumns(row); ok {
			header, columns = i, c
			break
		}
	}
	if header < 0 {
		return nil, fmt.Errorf("no tradebook header row found: want columns like %q, %q, %q", instrumentColumns[0], quantityColumns[0], priceColumns[0])
	}

	var records []RawTradeRecord
	for n, row := range rows[header+1:] {
		if isBlank(row) {
			continue
		}
		record, err := columns.record(row)
		if err != nil {
			return nil, fmt.Errorf("tradebook csv row %d: %w", header+2+n, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// csvColumns holds the resolved index of each tradebook column.
type csvColumns struct {
	instrument, timestamp, side, quantity, price int
}

func findColumns(row []string) (csvColumns, bool) {
	c := csvColumns{instrument: -1, timestamp: -1, side: -1, quantity: -1, price: -1}
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case matches(name, instrumentColumns) && c.instrument < 0:
			c.instrument = i
		case matches(name, timestampColumns) && c.timestamp < 0:
			c.timestamp = i
		case matches(name, sideColumns) && c.side < 0:
			c.side = i
		case matches(name, quantityColumns) && c.quantity < 0:
			c.quantity = i
		case matches(name, priceColumns) && c.price < 0:
			c.price = i
		}
	}
	// instrument, quantity and price are enough to recognize the header;
	// missing date or side columns will surface as invalid records later.
	return c, c.instrument >= 0 && c.quantity >= 0 && c.price >= 0
}

func matches(name string, synonyms []string) bool {
	for _, s := range synonyms {
		if name == s {
			return true
		}
	}
	return false
}

func (c csvColumns) record(row []string) (RawTradeRecord, error) {
	cell := func(i int) (string, error) {
		if i < 0 {
			return "", nil
		}
		if i >= len(row) {
			return "", fmt.Errorf("row has %d columns, want at least %d", len(row), i+1)
		}
		return row[i], nil
	}

	var record RawTradeRecord
	var err error
	if record.Instrument, err = cell(c.instrument); err != nil {
		return record, err
	}
	if record.Timestamp, err = cell(c.timestamp); err != nil {
		return record, err
	}
	if record.Side, err = cell(c.side); err != nil {
		return record, err
	}
	if record.Quantity, err = cell(c.quantity); err != nil {
		return record, err
	}
	record.Price, err = cell(c.price)
	return record, err
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportJSON reads a JSON tradebook export into raw trade records.
//
// The records are located with a jsonpath expression (for example
// "$.data.result[*]" for a wrapped API response); an empty path selects the
// elements of a top-level array. Each selected record must be an object
// whose keys match the same column synonyms the CSV importer accepts.
func ImportJSON(r io.Reader, path string) ([]RawTradeRecord, error) {
	if path == "" {
		path = "$[*]"
	}

	dec := json.NewDecoder(r)
	dec.UseNumber() // keep numbers exact when stringified back
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse tradebook json: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select records with %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// a path selecting a single record is acceptable too
		jlist = []any{jval}
	}

	var records []RawTradeRecord
	for i, item := range jlist {
		jrec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d selected by %q is not an object", i, path)
		}
		records = append(records, RawTradeRecord{
			Instrument: jfield(jrec, instrumentColumns),
			Timestamp:  jfield(jrec, timestampColumns),
			Side:       jfield(jrec, sideColumns),
			Quantity:   jfield(jrec, quantityColumns),
			Price:      jfield(jrec, priceColumns),
		})
	}
	return records, nil
}

// jfield finds the best matching key, case-insensitively, and stringifies
// its value. Synonyms are tried in order so "trade date" wins over "date".
func jfield(jrec map[string]any, synonyms []string) string {
	for _, s := range synonyms {
		for key, value := range jrec {
			if strings.ToLower(strings.TrimSpace(key)) == s {
				return jstring(value)
			}
		}
	}
	return ""
}

// ParseAliases parses an alias table from a JSON object mapping instrument
// identifiers to their canonical form.
func ParseAliases(content []byte) (map[string]string, error) {
	aliases := make(map[string]string)
	if err := json.Unmarshal(content, &aliases); err != nil {
		return nil, err
	}
	return aliases, nil
}

func jstring(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
