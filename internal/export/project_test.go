package export

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type testSale struct {
	Member string
	Amount float64
}

func saleColumns() []Column[testSale] {
	return []Column[testSale]{
		{Header: "Member", Value: func(s testSale) string { return s.Member }},
		{Header: "Amount", Value: func(s testSale) string { return Currency(s.Amount) }},
	}
}

func TestProjectOneRowPerRecordInOrder(t *testing.T) {
	sales := []testSale{
		{Member: "Reyes", Amount: 500},
		{Member: "Santos", Amount: 750.5},
		{Member: "Reyes", Amount: 500}, // duplicates must not merge
	}

	table := Project(sales, saleColumns())

	if len(table.Headers) != 2 || table.Headers[0] != "Member" || table.Headers[1] != "Amount" {
		t.Fatalf("unexpected headers %v", table.Headers)
	}
	if len(table.Rows) != len(sales) {
		t.Fatalf("expected %d rows, got %d", len(sales), len(table.Rows))
	}
	for i, sale := range sales {
		if table.Rows[i][0] != sale.Member {
			t.Fatalf("row %d out of order: %v", i, table.Rows[i])
		}
	}
}

func TestProjectEmptyRecords(t *testing.T) {
	table := Project(nil, saleColumns())
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
	if len(table.Headers) != 2 {
		t.Fatalf("expected headers even without rows, got %v", table.Headers)
	}
}

func TestCurrencyFormatsPesosWithCentavos(t *testing.T) {
	got := Currency(500)
	if !strings.Contains(got, "PHP") {
		t.Fatalf("expected currency code in %q", got)
	}
	if !strings.Contains(got, "500.00") {
		t.Fatalf("expected two decimal places in %q", got)
	}
}

func TestWritePDFProducesDocument(t *testing.T) {
	table := Project([]testSale{{Member: "Reyes", Amount: 500}}, saleColumns())

	var buf bytes.Buffer
	if err := WritePDF(&buf, "Transactions", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), table); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}
}

func TestWritePDFRejectsEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, "Transactions", time.Now(), Table{}); err == nil {
		t.Fatal("expected an error for a table without columns")
	}
}

func TestWriteXLSXProducesWorkbook(t *testing.T) {
	table := Project([]testSale{
		{Member: "Reyes", Amount: 500},
		{Member: "Santos", Amount: 750.5},
	}, saleColumns())

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "Transactions", table); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	// xlsx is a zip container
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatal("expected a zip-based workbook")
	}
}
