package console

import (
	"encoding/json"
)

// Record is one normalized row: camelCase keys, JSON-decoded values.
type Record = map[string]any

// Page is a normalized list response. Degraded is set when the payload
// did not match any known response shape; the caller gets an empty page
// instead of an error.
type Page struct {
	Records    []Record
	TotalCount int
	Degraded   bool
}

// envelope covers every list/detail shape the gateway is known to emit:
// a bare array, {"data": [...]}, {"data": {"items": [...], "totalCount": n}},
// and {"data": {...}} for single records.
type envelope struct {
	Success      *bool           `json:"success"`
	Data         json.RawMessage `json:"data"`
	TotalCount   *int            `json:"totalCount"`
	TotalRecords *int            `json:"totalRecords"`
	TotalPascal  *int            `json:"TotalRecords"`
	Message      string          `json:"message"`
	Error        string          `json:"error"`
}

type nestedList struct {
	Items      []json.RawMessage `json:"items"`
	TotalCount *int              `json:"totalCount"`
}

// normalizePage coerces a raw list response body into a Page.
func normalizePage(body []byte) Page {
	// Shape 1: bare JSON array.
	var bare []map[string]any
	if err := json.Unmarshal(body, &bare); err == nil {
		return pageFromMaps(bare, len(bare))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Data) == 0 {
		return Page{Records: []Record{}, Degraded: true}
	}

	total := envelopeTotal(env)

	// Shape 2: data is an array.
	var rows []map[string]any
	if err := json.Unmarshal(env.Data, &rows); err == nil {
		if total < 0 {
			total = len(rows)
		}
		return pageFromMaps(rows, total)
	}

	// Shape 3: data is {items, totalCount}.
	var nested nestedList
	if err := json.Unmarshal(env.Data, &nested); err == nil && nested.Items != nil {
		items := make([]map[string]any, 0, len(nested.Items))
		for _, raw := range nested.Items {
			var row map[string]any
			if json.Unmarshal(raw, &row) == nil {
				items = append(items, row)
			}
		}
		if nested.TotalCount != nil {
			total = *nested.TotalCount
		} else if total < 0 {
			total = len(items)
		}
		return pageFromMaps(items, total)
	}

	// Shape 4: data is a single object; treat it as a one-row page.
	var single map[string]any
	if err := json.Unmarshal(env.Data, &single); err == nil {
		return pageFromMaps([]map[string]any{single}, 1)
	}

	return Page{Records: []Record{}, Degraded: true}
}

// normalizeOne extracts a single record from a detail response; a list
// payload yields its first row.
func normalizeOne(body []byte) (Record, bool) {
	page := normalizePage(body)
	if page.Degraded || len(page.Records) == 0 {
		return nil, false
	}
	return page.Records[0], true
}

func pageFromMaps(rows []map[string]any, total int) Page {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, CanonicalizeRecord(row))
	}
	if total < 0 {
		total = len(records)
	}
	return Page{Records: records, TotalCount: total}
}

func envelopeTotal(env envelope) int {
	switch {
	case env.TotalCount != nil:
		return *env.TotalCount
	case env.TotalRecords != nil:
		return *env.TotalRecords
	case env.TotalPascal != nil:
		return *env.TotalPascal
	default:
		return -1
	}
}
