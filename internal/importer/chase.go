package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// ChaseParser parses Chase checking CSV exports.
//
// The description becomes the category and the decimal amount is shifted by
// Scale places into integer minor units.
type ChaseParser struct {
	Scale int32
}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns Transactions.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := p.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (p *ChaseParser) parseRow(rec []string) (model.Transaction, error) {
	date, err := time.ParseInLocation(chaseDateFormat, rec[chaseColDate], time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}

	minor, err := ToMinorUnits(amount, p.Scale)
	if err != nil {
		return model.Transaction{}, err
	}

	category := strings.TrimSpace(rec[chaseColDesc])
	if category == "" {
		category = "Uncategorized"
	}

	return model.Transaction{
		Category:  category,
		Amount:    minor,
		Timestamp: date,
	}, nil
}

// ToMinorUnits shifts amount by scale decimal places and rounds half away
// from zero. It fails when the result is below model.MinAmount or does not
// fit in int64.
func ToMinorUnits(amount decimal.Decimal, scale int32) (int64, error) {
	shifted := amount.Shift(scale).Round(0)
	if !shifted.BigInt().IsInt64() || shifted.IntPart() < model.MinAmount {
		return 0, fmt.Errorf("amount %s out of range", amount)
	}
	return shifted.IntPart(), nil
}
