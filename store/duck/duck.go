package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"datasheet/clip"
	nt "datasheet/entity"
)

// Todo: use uptodate lib from duckdb in main

const (
	table  = "sheet"
	rowCol = "_row"
)

// Duck is a sheet held in an in-memory duckdb table.
// Grid row n is the table row with _row = n+1.
type Duck struct {
	db       *sql.DB
	ctx      context.Context
	logger   nt.Logger
	filename string
	fields   []nt.Field
}

func New(ctx context.Context, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		ctx:    ctx,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load a csv file, every column as text
func (dk *Duck) Load(path string) (err error) {

	_, err = dk.db.ExecContext(dk.ctx, loadQuery(path))
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}
	dk.filename = path

	dk.fields, err = getFields(dk.ctx, dk.db)
	return
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Fields of the sheet, in column order
func (dk *Duck) Fields() []nt.Field {
	return dk.fields
}

// Lines returns every row in grid order
func (dk *Duck) Lines() (lines []nt.Line, err error) {

	rows, err := dk.db.QueryContext(dk.ctx, selectQuery(dk.fields))
	if err != nil {
		err = errors.Wrapf(err, "failed to query sheet")
		return
	}
	defer rows.Close()

	count, err := columnCount(rows)
	if err != nil {
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		line := make(nt.Line, count)
		for i, val := range vals {
			line[i] = nt.Value{Raw: val}
		}
		lines = append(lines, line)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Set the value of one cell, a null value clears it
func (dk *Duck) Set(row, col int, val nt.Value) (err error) {

	err = dk.set(dk.db, row, col, val)
	return
}

// Clear cells in one transaction
func (dk *Duck) Clear(coords []nt.Coord) (err error) {

	writes := make([]placement, len(coords))
	for i, at := range coords {
		writes[i] = placement{at: at}
	}

	err = dk.apply(writes)
	if err != nil {
		return
	}

	dk.logger.Info(dk.ctx, "cleared cells", "count", len(coords))
	return
}

// Paste a snapshot with its top-left corner at start
// A selection wider than one cell clips the paste to start..end.
func (dk *Duck) Paste(snap clip.Snapshot, start, end nt.Coord) (err error) {

	writes := placements(snap, start, end, len(dk.fields))

	err = dk.apply(writes)
	if err != nil {
		return
	}

	dk.logger.Info(dk.ctx, "pasted cells", "count", len(writes), "row", start.Row, "col", start.Col)
	return
}

// unexported

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type placement struct {
	at  nt.Coord
	val nt.Value
}

func (dk *Duck) apply(writes []placement) (err error) {

	tx, err := dk.db.BeginTx(dk.ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin")
		return
	}

	for _, write := range writes {
		err = dk.set(tx, write.at.Row, write.at.Col, write.val)
		if err != nil {
			tx.Rollback()
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit")
	return
}

func (dk *Duck) set(ex execer, row, col int, val nt.Value) (err error) {

	if col < 0 || col >= len(dk.fields) {
		err = errors.Errorf("no field for column %d", col)
		return
	}

	var arg any
	if !val.IsNull() {
		arg = val.String()
	}

	_, err = ex.ExecContext(dk.ctx, updateQuery(dk.fields[col].Name), arg, row+1)
	err = errors.Wrapf(err, "failed to set %d,%d", row, col)
	return
}

// placements offsets each entry from the snapshot origin to start
func placements(snap clip.Snapshot, start, end nt.Coord, cols int) (writes []placement) {

	origin, ok := snap.Origin()
	if !ok {
		return
	}
	clipped := start != end

	for _, entry := range snap {
		at := nt.Coord{
			Row: start.Row + entry.At.Row - origin.Row,
			Col: start.Col + entry.At.Col - origin.Col,
		}
		if at.Col >= cols {
			continue
		}
		if clipped && (at.Row > end.Row || at.Col > end.Col) {
			continue
		}
		writes = append(writes, placement{at: at, val: entry.Content})
	}
	return
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(text string) string {
	return "'" + strings.ReplaceAll(text, "'", "''") + "'"
}

func loadQuery(path string) string {
	return fmt.Sprintf(`
		CREATE OR REPLACE TABLE %s AS
		SELECT
			ROW_NUMBER() OVER () as %s,
			*
		FROM read_csv(%s, header=true, all_varchar=true)
	`, table, rowCol, quoteLiteral(path))
}

func selectQuery(fields []nt.Field) string {

	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = quoteIdent(field.Name)
	}
	if len(names) == 0 {
		names = []string{"*"}
	}

	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(names, ", "), table, rowCol)
}

func updateQuery(field string) string {
	return fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", table, quoteIdent(field), rowCol)
}

func columnCount(rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get cols from query rows")
	}
	return len(cols), nil
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func getFields(ctx context.Context, db *sql.DB) (fields []nt.Field, err error) {

	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = ? AND column_name != ?
		ORDER BY ordinal_position
	`, table, rowCol)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		if err = rows.Scan(&field.Name, &field.Type); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}
