package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
)

// LoadJSON reads a JSON array of record objects from path. A missing
// or unreadable file propagates the I/O error; a top-level value that
// is not an array of objects is ErrInvalidInput. Records that arrive
// without an id are assigned a ULID so the CSV and the store always
// have a key.
func LoadJSON(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}

	// Unmarshal alone is not enough: `null` decodes into a nil slice
	// without error, which would silently produce an empty table.
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, fmt.Errorf("parse records %s: not a list of records: %w", path, internalerr.ErrInvalidInput)
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse records %s: %w: %v", path, internalerr.ErrInvalidInput, err)
	}

	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = ulid.Make().String()
		}
	}
	return &Table{Records: recs}, nil
}
