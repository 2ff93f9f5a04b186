// Package export flattens report data into printable documents.
package export

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column pairs a header label with the projector that renders one cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Table is the flat structure handed to the document writers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Project maps records to a table: one row per record, input order kept,
// nothing dropped or merged. Aggregation, when wanted, happens before
// projection; this helper never aggregates.
func Project[T any](records []T, columns []Column[T]) Table {
	headers := make([]string, len(columns))
	for i, column := range columns {
		headers[i] = column.Header
	}

	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(columns))
		for j, column := range columns {
			row[j] = column.Value(record)
		}
		rows[i] = row
	}

	return Table{Headers: headers, Rows: rows}
}

var (
	pesoPrinter = message.NewPrinter(language.English)
	pesoUnit    = currency.MustParseISO("PHP")
)

// Currency renders a peso amount for export cells. Formatting happens at
// projection time, not in the document writer.
func Currency(amount float64) string {
	return pesoPrinter.Sprintf("%v", currency.ISO(pesoUnit.Amount(amount)))
}
