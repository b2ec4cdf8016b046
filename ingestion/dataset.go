package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// row is one record of the source dataset, as read from the CSV.
type row struct {
	Title       string
	PubDate     string
	GUID        string
	Link        string
	Description string
}

// requiredColumns are the dataset columns the pipeline consumes.
// Extra columns are ignored.
var requiredColumns = []string{"title", "pubDate", "guid", "link", "description"}

// readDataset reads the full source CSV into memory as structured rows.
// The header drives column positions, so column order does not matter.
func readDataset(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, row{
			Title:       record[index["title"]],
			PubDate:     record[index["pubDate"]],
			GUID:        record[index["guid"]],
			Link:        record[index["link"]],
			Description: record[index["description"]],
		})
	}
	return rows, nil
}

// pubDateLayouts are the timestamp forms accepted for the pubDate column,
// tried in order.
var pubDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePubDate parses a pubDate cell into a UTC timestamp.
func parsePubDate(value string) (time.Time, error) {
	for _, layout := range pubDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadPubDate, value)
}
