package record

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvHeader is the output schema. There is deliberately no row-index
// column; the id column is the stable key.
var csvHeader = []string{"id", "type", "body", "cleaned_posts"}

// WriteCSV writes the table to path as a delimited file with a header
// row. The file only appears complete when every record has been
// written and flushed.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range t.Records {
		if err := w.Write([]string{r.ID, r.Type, r.Body, r.Cleaned}); err != nil {
			f.Close()
			return fmt.Errorf("write record %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
