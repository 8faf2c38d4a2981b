package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// Header is the CSV header for transactions.csv. seq is the insertion
// sequence that orders transactions sharing a timestamp.
const Header = "timestamp,category,amount,seq"

const (
	numFields    = 4
	colTimestamp = 0
	colCategory  = 1
	colAmount    = 2
	colSeq       = 3
)

// ReadRecords reads all records from a transactions.csv reader.
func ReadRecords(r io.Reader) ([]ledger.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var recs []ledger.Record
	for i, row := range records[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// ReadTransactions reads transactions.csv and drops the sequence numbers.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	recs, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		return nil, nil
	}
	txns := make([]model.Transaction, len(recs))
	for i, rec := range recs {
		txns[i] = rec.Transaction
	}
	return txns, nil
}

// WriteRecords writes records (including header).
func WriteRecords(w io.Writer, recs []ledger.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendRecords appends rows to an existing transactions.csv writer (no header).
func AppendRecords(w io.Writer, recs []ledger.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec ledger.Record) []string {
	row := make([]string, numFields)
	row[colTimestamp] = rec.Transaction.Timestamp.Format(time.RFC3339)
	row[colCategory] = rec.Transaction.Category
	row[colAmount] = strconv.FormatInt(rec.Transaction.Amount, 10)
	row[colSeq] = strconv.FormatUint(rec.Seq, 10)
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(record []string) (ledger.Record, error) {
	if len(record) != numFields {
		return ledger.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return ledger.Record{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if amount < model.MinAmount {
		return ledger.Record{}, fmt.Errorf("amount %d out of range", amount)
	}

	seq, err := strconv.ParseUint(record[colSeq], 10, 64)
	if err != nil {
		return ledger.Record{}, fmt.Errorf("parsing seq %q: %w", record[colSeq], err)
	}

	return ledger.Record{
		Transaction: model.Transaction{
			Category:  record[colCategory],
			Amount:    amount,
			Timestamp: ts,
		},
		Seq: seq,
	}, nil
}
