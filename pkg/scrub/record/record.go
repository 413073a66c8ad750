package record

import (
	"fmt"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
)

// Record is one unit of input: an identifier, an optional trait label,
// and the raw post body. The raw body is retained unchanged; the
// pipeline writes its output into Cleaned alongside it.
type Record struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Body    string `json:"body"`
	Cleaned string `json:"-"`
}

// Table is the in-memory tabular form of a record batch.
type Table struct {
	Records []Record
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// Bodies returns the raw post bodies in row order.
func (t *Table) Bodies() []string {
	bodies := make([]string, len(t.Records))
	for i, r := range t.Records {
		bodies[i] = r.Body
	}
	return bodies
}

// SetCleaned attaches cleaned bodies by row index. The slice must
// correspond 1:1 with the rows; anything else is a programming error
// on the caller's side.
func (t *Table) SetCleaned(cleaned []string) error {
	if len(cleaned) != len(t.Records) {
		return fmt.Errorf("cleaned count %d != record count %d: %w",
			len(cleaned), len(t.Records), internalerr.ErrInvalidInput)
	}
	for i := range t.Records {
		t.Records[i].Cleaned = cleaned[i]
	}
	return nil
}
