package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// Reason classifies why user input was rejected.
type Reason string

const (
	ReasonBlankCategory Reason = "blank-category"
	ReasonBadAmount     Reason = "bad-amount"
	ReasonBadDate       Reason = "bad-date"
	ReasonBadTime       Reason = "bad-time"
)

const (
	// DateFormat is the accepted date layout (YYYY-MM-DD).
	DateFormat = "2006-01-02"
	// TimeFormat is the default time layout (HH:MM, 24h).
	TimeFormat = "15:04"

	timeFormatSeconds = "15:04:05"
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Reason Reason
	Field  string
	Value  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%s]: %q", e.Reason, e.Field, e.Value)
}

// ValidationErrors is the set of field failures for one add attempt.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, ve := range errs {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether any error carries reason.
func (errs ValidationErrors) Has(reason Reason) bool {
	for _, e := range errs {
		if e.Reason == reason {
			return true
		}
	}
	return false
}

// As lets errors.As extract a single ValidationError from the set.
func (errs ValidationErrors) As(target any) bool {
	ve, ok := target.(*ValidationError)
	if !ok || len(errs) == 0 {
		return false
	}
	*ve = errs[0]
	return true
}

// Input is the raw text entered on the add screen.
type Input struct {
	Category string
	Amount   string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM or HH:MM:SS
}

// Validate checks every field and returns all failures.
func Validate(in Input, loc *time.Location) (model.Transaction, ValidationErrors) {
	var errs ValidationErrors

	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, ValidationError{Reason: ReasonBlankCategory, Field: "category", Value: in.Category})
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(in.Amount), 10, 64)
	if err != nil || amount < model.MinAmount {
		errs = append(errs, ValidationError{Reason: ReasonBadAmount, Field: "amount", Value: in.Amount})
	}

	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateFormat, strings.TrimSpace(in.Date), loc)
	if err != nil {
		errs = append(errs, ValidationError{Reason: ReasonBadDate, Field: "date", Value: in.Date})
	}

	clock, ok := parseClock(strings.TrimSpace(in.Time))
	if !ok {
		errs = append(errs, ValidationError{Reason: ReasonBadTime, Field: "time", Value: in.Time})
	}

	if len(errs) > 0 {
		return model.Transaction{}, errs
	}

	ts := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc)
	return model.Transaction{
		Category:  in.Category,
		Amount:    amount,
		Timestamp: ts,
	}, nil
}

// ParseTransaction builds a Transaction from user input. The returned error,
// when non-nil, is always a ValidationErrors.
func ParseTransaction(in Input, loc *time.Location) (model.Transaction, error) {
	txn, errs := Validate(in, loc)
	if len(errs) > 0 {
		return model.Transaction{}, errs
	}
	return txn, nil
}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range []string{TimeFormat, timeFormatSeconds} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
