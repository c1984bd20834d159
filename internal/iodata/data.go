// Package iodata loads the floral formula dataset into typed records.
// This is an impure package: it reads either the bundled CSV resource
// or a user-supplied file from disk.
package iodata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnflora/pkg/floral"
)

//go:embed formulae.csv
var formulaeCSV []byte

// Header is the fixed header row of the dataset. Column order is
// positional and part of the schema.
const Header = "order,family,flower_type,symmetry,tepals,calyx," +
	"petals,anthers,carpels,ovary,fruit,adnation"

// fieldsPerRow is the number of columns in the dataset schema.
var fieldsPerRow = len(strings.Split(Header, ","))

// Load parses the dataset into records, preserving row order. With an
// empty path the bundled dataset is used; otherwise path points to an
// external CSV with the same schema. Any malformed row fails the whole
// load: the dataset is small and bundled, partial success would only
// hide data bugs.
func Load(path string) ([]floral.Record, error) {
	var src io.Reader
	if path == "" {
		src = bytes.NewReader(formulaeCSV)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, ReadError(path, err)
		}
		defer f.Close()
		src = f
	}
	return parse(src, path)
}

func parse(src io.Reader, path string) ([]floral.Record, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = fieldsPerRow

	header, err := r.Read()
	if err != nil {
		return nil, HeaderError(path, err)
	}
	if got := strings.Join(header, ","); got != Header {
		return nil, BadHeaderError(path, got)
	}

	var records []floral.Record
	line := 1
	for {
		line++
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, RowError(path, line, err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, RowError(path, line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, EmptyError(path)
	}
	return records, nil
}

// parseRow converts one positional CSV row into a Record.
func parseRow(row []string) (floral.Record, error) {
	var rec floral.Record

	rec.Order = strings.TrimSpace(row[0])
	rec.Family = strings.TrimSpace(row[1])
	if rec.Order == "" || rec.Family == "" {
		return rec, errEmptyName
	}

	sex, err := floral.ParseFlowerType(row[2])
	if err != nil {
		return rec, err
	}
	rec.Sex = sex

	rec.Formula, err = floral.ParseFormula(
		row[3], row[4], row[5], row[6],
		row[7], row[8], row[9], row[10], row[11],
	)
	if err != nil {
		return rec, err
	}
	return rec, nil
}
