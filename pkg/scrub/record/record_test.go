package record

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/scrub/pkg/scrub/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "in.json", `[
		{"id": "r1", "type": "INTJ", "body": "hello world"},
		{"id": "r2", "type": "ENFP", "body": "second post"}
	]`)

	table, err := LoadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if table.Records[0].ID != "r1" || table.Records[1].Body != "second post" {
		t.Errorf("unexpected records: %+v", table.Records)
	}
}

func TestLoadJSONAssignsIDs(t *testing.T) {
	path := writeFile(t, "in.json", `[{"type": "ISTP", "body": "no id here"}]`)

	table, err := LoadJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Records[0].ID == "" {
		t.Error("expected a generated id for a record without one")
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	if _, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadJSONNotAList(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"object", `{"body": "an object, not a list"}`},
		{"null", `null`},
		{"null with whitespace", "\n  null\n"},
		{"scalar", `42`},
		{"list of scalars", `[1, 2]`},
	}
	for _, tt := range tests {
		path := writeFile(t, "in.json", tt.content)
		table, err := LoadJSON(path)
		if !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tt.name, err)
		}
		if table != nil {
			t.Errorf("%s: got table %+v, want nil", tt.name, table)
		}
	}
}

func TestSetCleanedLengthMismatch(t *testing.T) {
	table := &Table{Records: []Record{{ID: "r1", Body: "x"}}}

	if err := table.SetCleaned([]string{"a", "b"}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestWriteCSV(t *testing.T) {
	table := &Table{Records: []Record{
		{ID: "r1", Type: "INTJ", Body: "raw, with comma", Cleaned: "clean one"},
		{ID: "r2", Type: "ENFP", Body: "second", Cleaned: "clean two"},
	}}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := table.WriteCSV(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	header := rows[0]
	if len(header) != 4 || header[0] != "id" || header[3] != "cleaned_posts" {
		t.Errorf("unexpected header: %v", header)
	}
	if rows[1][2] != "raw, with comma" || rows[2][3] != "clean two" {
		t.Errorf("unexpected rows: %v", rows[1:])
	}
}
