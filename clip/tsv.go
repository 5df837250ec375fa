package clip

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"

	nt "datasheet/entity"
)

// TSV renders the snapshot as tab separated rows, the form spreadsheets exchange.
func (snap Snapshot) TSV() (text string, err error) {

	var buf bytes.Buffer
	wtr := csv.NewWriter(&buf)
	wtr.Comma = '\t'

	for _, row := range snap.Rows() {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = val.String()
		}
		err = wtr.Write(record)
		if err != nil {
			err = errors.Wrapf(err, "failed to write tsv")
			return
		}
	}

	wtr.Flush()
	err = errors.Wrapf(wtr.Error(), "failed to flush tsv")
	text = strings.TrimSuffix(buf.String(), "\n")
	return
}

// ParseTSV reads tab separated rows into a snapshot with its origin at 0,0.
// Empty fields are null content.
func ParseTSV(text string) (snap Snapshot, err error) {

	rdr := csv.NewReader(strings.NewReader(text))
	rdr.Comma = '\t'
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true

	records, err := rdr.ReadAll()
	if err != nil {
		err = errors.Wrapf(err, "failed to read tsv")
		return
	}

	for row, record := range records {
		for col, field := range record {
			entry := Entry{At: nt.Coord{Row: row, Col: col}}
			if field != "" {
				entry.Content = nt.Text(field)
			}
			snap = append(snap, entry)
		}
	}
	return
}
