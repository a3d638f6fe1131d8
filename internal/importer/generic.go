package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/spendwell-dev/spendwell/internal/dates"
)

// GenericParser parses the spendwell interchange CSV:
// date,description,amount,category with a header row. Amounts are
// magnitudes; category may be empty.
type GenericParser struct{}

const (
	genericNumFields   = 4
	genericColDate     = 0
	genericColDesc     = 1
	genericColAmount   = 2
	genericColCategory = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the interchange CSV and returns rows.
func (p *GenericParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (Row, error) {
	date, err := dates.Parse(rec[genericColDate])
	if err != nil {
		return Row{}, err
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}
	if amount.IsNegative() {
		// Bank exports often sign debits; the ledger stores magnitudes.
		amount = amount.Neg()
	}

	return Row{
		Date:        date,
		Description: rec[genericColDesc],
		Amount:      amount,
		Category:    rec[genericColCategory],
	}, nil
}
