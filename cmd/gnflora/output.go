package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gnames/gnflora/pkg/floral"
	"github.com/gnames/gnfmt"
)

// recordOutput is a record flattened for tabular and JSON output.
type recordOutput struct {
	Order       string `json:"order"`
	Family      string `json:"family"`
	Sex         string `json:"sex"`
	Formula     string `json:"formula"`
	Explanation string `json:"explanation,omitempty"`
}

func flatten(records []floral.Record, explain bool) []recordOutput {
	res := make([]recordOutput, len(records))
	for i, rec := range records {
		res[i] = recordOutput{
			Order:   rec.Order,
			Family:  rec.Family,
			Sex:     rec.Sex.String(),
			Formula: rec.Formula.String(),
		}
		if explain {
			res[i].Explanation = rec.Explain(uint(cfg.Output.WrapWidth))
		}
	}
	return res
}

// writeRecords prints matched records in the configured output format.
func writeRecords(w io.Writer, records []floral.Record, explain bool) error {
	switch cfg.Output.Format {
	case "csv", "tsv":
		return writeTable(w, records, explain)
	case "compact-json", "pretty-json":
		return writeJSON(w, records, explain)
	default:
		return writeCompact(w, records, explain)
	}
}

// writeCompact prints one formula block per record: a header line with
// order, family and flower sex, then the formula or its explanation.
func writeCompact(w io.Writer, records []floral.Record, explain bool) error {
	for _, rec := range records {
		var body string
		if explain {
			body = rec.Explain(uint(cfg.Output.WrapWidth))
		} else {
			body = rec.Formula.String()
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", rec.Header(), body); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, records []floral.Record, explain bool) error {
	cw := csv.NewWriter(w)
	if cfg.Output.Format == "tsv" {
		cw.Comma = '\t'
	}

	header := []string{"order", "family", "sex", "formula"}
	if explain {
		header = append(header, "explanation")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range flatten(records, explain) {
		row := []string{rec.Order, rec.Family, rec.Sex, rec.Formula}
		if explain {
			row = append(row, rec.Explanation)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, records []floral.Record, explain bool) error {
	enc := gnfmt.GNjson{Pretty: cfg.Output.Format == "pretty-json"}
	out, err := enc.Encode(flatten(records, explain))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
