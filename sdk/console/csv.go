package console

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Column maps one CSV header to the record field behind it.
type Column struct {
	Header string
	Field  string
}

// Exporter writes loaded records as CSV the way the console's export
// button does: a fixed header row, one row per record, booleans as
// Yes/No, and dates trimmed to the ISO date.
type Exporter struct {
	Resource string
	Columns  []Column
}

// TicketExportColumns matches the console's ticket grid.
func TicketExportColumns() []Column {
	return []Column{
		{Header: "Ticket ID", Field: "ticketId"},
		{Header: "Issue Title", Field: "issueTitle"},
		{Header: "Category", Field: "categoryId"},
		{Header: "Service", Field: "serviceId"},
		{Header: "Status", Field: "statusName"},
		{Header: "Requester First Name", Field: "firstName"},
		{Header: "Requester Last Name", Field: "lastName"},
		{Header: "Created Date", Field: "createdDate"},
	}
}

// Write emits the header and one row per record.
func (e *Exporter) Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(e.Columns))
	for i, col := range e.Columns {
		header[i] = col.Header
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(e.Columns))
	for _, rec := range records {
		for i, col := range e.Columns {
			row[i] = cellValue(rec[col.Field])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename is "<resource>-<YYYY-MM-DD>.csv" for the given day.
func (e *Exporter) Filename(now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", e.Resource, now.Format("2006-01-02"))
}

// Save writes the export to a dated file in dir and returns its path.
func (e *Exporter) Save(dir string, records []Record, now time.Time) (string, error) {
	path := dir + string(os.PathSeparator) + e.Filename(now)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := e.Write(f, records); err != nil {
		return "", err
	}
	return path, nil
}

// cellValue stringifies one field with the console's conventions.
func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		// Timestamps are trimmed to the date portion.
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t.Format("2006-01-02")
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
