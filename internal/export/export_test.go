package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"backoffice/internal/domain"
)

func sampleColumns() []Column {
	return []Column{
		{Field: "bookingId", Header: "Booking ID"},
		{Field: "guestName", Header: "Guest"},
		{Field: "checkIn", Header: "Check-In", Format: DateCell},
		{Field: "totalAmount", Header: "Amount", Format: MoneyCell},
	}
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		{"bookingId": "b1", "guestName": "Anita Verma", "checkIn": "2025-03-10", "totalAmount": float64(12500)},
		{"bookingId": "b2", "guestName": "Ravi\tKumar", "checkIn": "2025-03-15", "totalAmount": float64(980.5)},
		{"bookingId": "b3", "guestName": "Meera Nair"},
	}
}

func TestClipboardTSVShape(t *testing.T) {
	text := ClipboardTSV(sampleRecords(), sampleColumns())
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != len(sampleRecords())+1 {
		t.Fatalf("got %d lines, want %d", len(lines), len(sampleRecords())+1)
	}
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != len(sampleColumns()) {
			t.Fatalf("line %d has %d fields, want %d: %q", i, len(fields), len(sampleColumns()), line)
		}
	}
	if lines[0] != "Booking ID\tGuest\tCheck-In\tAmount" {
		t.Fatalf("header row wrong: %q", lines[0])
	}
}

func TestClipboardTSVFormatting(t *testing.T) {
	text := ClipboardTSV(sampleRecords(), sampleColumns())
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	row1 := strings.Split(lines[1], "\t")
	if row1[2] != "10 Mar 2025" {
		t.Fatalf("date not rendered as display date: %q", row1[2])
	}
	if row1[3] != "12,500" {
		t.Fatalf("amount missing thousands separator: %q", row1[3])
	}

	// embedded tab flattened, not an extra field
	row2 := strings.Split(lines[2], "\t")
	if row2[1] != "Ravi Kumar" {
		t.Fatalf("embedded tab not flattened: %q", row2[1])
	}

	// missing fields render placeholders, keeping the cell count
	row3 := strings.Split(lines[3], "\t")
	if row3[2] != Placeholder || row3[3] != "0" {
		t.Fatalf("missing values must render placeholders: %v", row3)
	}
}

func TestEmptyRecordSetStillProducesArtifacts(t *testing.T) {
	cols := sampleColumns()

	text := ClipboardTSV(nil, cols)
	if lines := strings.Split(strings.TrimRight(text, "\n"), "\n"); len(lines) != 1 {
		t.Fatalf("empty TSV should be header-only, got %d lines", len(lines))
	}

	wb, err := Workbook(nil, cols, "Bookings")
	if err != nil {
		t.Fatalf("empty workbook errored: %v", err)
	}
	if len(wb) == 0 || !bytes.HasPrefix(wb, []byte("PK")) {
		t.Fatalf("empty workbook is not a valid xlsx archive")
	}

	doc := PrintableHTML(nil, cols, "Bookings")
	if !strings.Contains(doc, "<thead>") || !strings.Contains(doc, "Booking ID") {
		t.Fatalf("empty print document missing header: %q", doc)
	}

	pdf, err := TabularPDF(nil, cols, "Bookings")
	if err != nil || len(pdf) == 0 {
		t.Fatalf("empty pdf failed: %v", err)
	}
}

func TestWorkbookNonEmpty(t *testing.T) {
	wb, err := Workbook(sampleRecords(), sampleColumns(), "Bookings")
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}
	if !bytes.HasPrefix(wb, []byte("PK")) {
		t.Fatalf("workbook does not look like an xlsx archive")
	}
}

func TestPrintableHTMLRowOrder(t *testing.T) {
	doc := PrintableHTML(sampleRecords(), sampleColumns(), "Booking List")
	if !strings.Contains(doc, "<!DOCTYPE html>") || !strings.Contains(doc, "<style>") {
		t.Fatalf("print document must be self-contained")
	}
	b1 := strings.Index(doc, "b1")
	b3 := strings.Index(doc, "b3")
	if b1 < 0 || b3 < 0 || b1 > b3 {
		t.Fatalf("rows out of order in print document")
	}
}

func TestFilenameConvention(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 5, 9, 0, time.Local)
	got := Filename("bookings", FormatXLSX, now)
	if got != "bookings_export_2025-03-10_14-05-09.xlsx" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestJobRejectsRepeatWhilePreparing(t *testing.T) {
	j := NewJob()
	if err := j.Begin(); err != nil {
		t.Fatalf("first Begin failed: %v", err)
	}
	if err := j.Begin(); !domain.IsExportInProgress(err) {
		t.Fatalf("second Begin should be rejected, got %v", err)
	}
	j.Finish(nil)
	if j.Current() != StateSucceeded {
		t.Fatalf("state = %s, want succeeded", j.Current())
	}
	if err := j.Begin(); err != nil {
		t.Fatalf("Begin after finish failed: %v", err)
	}
	j.Finish(domain.RemoteError{Status: 500})
	if j.Current() != StateFailed {
		t.Fatalf("state = %s, want failed", j.Current())
	}
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"xlsx", "pdf", "html", "tsv"} {
		if _, valid := ParseFormat(ok); !valid {
			t.Fatalf("%s should parse", ok)
		}
	}
	if _, valid := ParseFormat("docx"); valid {
		t.Fatalf("docx must not parse")
	}
}
