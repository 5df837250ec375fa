package duck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/marcboeker/go-duckdb"

	"datasheet/clip"
	nt "datasheet/entity"
)

type logger struct{}

func (logger) Info(ctx context.Context, msg string, kv ...any)             {}
func (logger) Error(ctx context.Context, msg string, err error, kv ...any) {}

func TestQuote(t *testing.T) {

	if got := quoteIdent(`we"ird`); got != `"we""ird"` {
		t.Fatalf("got %s", got)
	}
	if got := quoteLiteral("it's.csv"); got != "'it''s.csv'" {
		t.Fatalf("got %s", got)
	}
	if got := updateQuery("name"); got != `UPDATE sheet SET "name" = ? WHERE _row = ?` {
		t.Fatalf("got %s", got)
	}
	got := selectQuery([]nt.Field{{Name: "a"}, {Name: "b"}})
	if got != `SELECT "a", "b" FROM sheet ORDER BY _row` {
		t.Fatalf("got %s", got)
	}
}

func TestPlacements(t *testing.T) {

	snap := clip.Snapshot{
		{At: nt.Coord{Row: 1, Col: 1}, Content: nt.Text("a")},
		{At: nt.Coord{Row: 1, Col: 2}, Content: nt.Text("b")},
		{At: nt.Coord{Row: 2, Col: 1}, Content: nt.Text("c")},
		{At: nt.Coord{Row: 2, Col: 2}, Content: nt.Text("d")},
	}

	cases := []struct {
		name  string
		start nt.Coord
		end   nt.Coord
		cols  int
		want  []nt.Coord
	}{
		{
			name:  "single cell target takes it all",
			start: nt.Coord{Row: 0, Col: 0},
			end:   nt.Coord{Row: 0, Col: 0},
			cols:  5,
			want:  []nt.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		{
			name:  "wider selection clips",
			start: nt.Coord{Row: 3, Col: 0},
			end:   nt.Coord{Row: 3, Col: 1},
			cols:  5,
			want:  []nt.Coord{{3, 0}, {3, 1}},
		},
		{
			name:  "past the last column",
			start: nt.Coord{Row: 0, Col: 4},
			end:   nt.Coord{Row: 0, Col: 4},
			cols:  5,
			want:  []nt.Coord{{0, 4}, {1, 4}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writes := placements(snap, tc.start, tc.end, tc.cols)
			if len(writes) != len(tc.want) {
				t.Fatalf("got %d writes, want %d", len(writes), len(tc.want))
			}
			for i, write := range writes {
				if write.at != tc.want[i] {
					t.Fatalf("write %d: got %v, want %v", i, write.at, tc.want[i])
				}
			}
		})
	}

	if writes := placements(nil, nt.Coord{}, nt.Coord{}, 5); len(writes) != 0 {
		t.Fatalf("empty snapshot should place nothing")
	}
}

func TestDuck(t *testing.T) {

	path := filepath.Join(t.TempDir(), "people.csv")
	err := os.WriteFile(path, []byte("name,age\nann,31\nbob,42\ncid,27\n"), 0o644)
	if err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	dk, err := New(context.Background(), logger{})
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer dk.Close()

	err = dk.Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	fields := dk.Fields()
	if len(fields) != 2 || fields[0].Name != "name" || fields[1].Name != "age" {
		t.Fatalf("unexpected fields: %v", fields)
	}

	err = dk.Set(1, 1, nt.Text("43"))
	if err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	err = dk.Clear([]nt.Coord{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	snap := clip.Snapshot{{At: nt.Coord{Row: 1, Col: 0}, Content: nt.Text("bob")}}
	err = dk.Paste(snap, nt.Coord{Row: 2, Col: 0}, nt.Coord{Row: 2, Col: 0})
	if err != nil {
		t.Fatalf("failed to paste: %v", err)
	}

	lines, err := dk.Lines()
	if err != nil {
		t.Fatalf("failed to read lines: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !lines[0][0].IsNull() {
		t.Fatalf("cleared cell should be null, got %v", lines[0][0])
	}
	if got := lines[1][1].String(); got != "43" {
		t.Fatalf("got %q, want 43", got)
	}
	if got := lines[2][0].String(); got != "bob" {
		t.Fatalf("got %q, want bob", got)
	}

	err = dk.Set(0, 9, nt.Text("x"))
	if err == nil {
		t.Fatalf("expected error for missing column")
	}
}
