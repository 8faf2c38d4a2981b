// Package session models the list/add screen flow around a ledger.
package session

import (
	"errors"
	"time"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// Screen identifies the visible screen.
type Screen string

const (
	ScreenList Screen = "list"
	ScreenAdd  Screen = "add"
)

var (
	// ErrAlreadySubmitted is returned when a form that already handed off a
	// transaction is submitted again.
	ErrAlreadySubmitted = errors.New("form already submitted")
	// ErrNotOnAddScreen is returned when an add action runs outside the add screen.
	ErrNotOnAddScreen = errors.New("not on add screen")
)

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

// AddForm is the add screen's text fields. onAdd runs at most once.
type AddForm struct {
	Category string
	Amount   string
	Date     string
	Time     string

	loc       *time.Location
	onAdd     func(model.Transaction)
	submitted bool
}

// NewAddForm creates a form with date and time defaulted from now.
func NewAddForm(now time.Time, onAdd func(model.Transaction)) *AddForm {
	return &AddForm{
		Date:  now.Format(ledger.DateFormat),
		Time:  now.Truncate(time.Minute).Format(ledger.TimeFormat),
		loc:   now.Location(),
		onAdd: onAdd,
	}
}

// Submit validates the fields and hands the transaction to onAdd.
// On validation failure nothing is handed off and the form stays usable.
func (f *AddForm) Submit() (model.Transaction, error) {
	if f.submitted {
		return model.Transaction{}, ErrAlreadySubmitted
	}
	txn, err := ledger.ParseTransaction(ledger.Input{
		Category: f.Category,
		Amount:   f.Amount,
		Date:     f.Date,
		Time:     f.Time,
	}, f.loc)
	if err != nil {
		return model.Transaction{}, err
	}
	f.submitted = true
	if f.onAdd != nil {
		f.onAdd(txn)
	}
	return txn, nil
}

// View is what the list screen renders.
type View struct {
	Transactions []model.Transaction // most recent first
	Balance      []ledger.BalancePoint
}

// Session owns a ledger and the current screen.
type Session struct {
	ledger *ledger.Ledger
	screen Screen
	form   *AddForm
	now    Clock
}

// New creates a Session on the list screen.
func New(l *ledger.Ledger, now Clock) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{ledger: l, screen: ScreenList, now: now}
}

// NewSeeded creates a Session over a freshly seeded ledger, as on cold start.
func NewSeeded(now Clock) *Session {
	if now == nil {
		now = time.Now
	}
	return New(ledger.NewSeeded(now()), now)
}

// Ledger returns the owned ledger.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// NavigateToAdd opens a fresh add form. The form's hand-off inserts at the
// head of the ledger and returns to the list.
func (s *Session) NavigateToAdd() *AddForm {
	s.screen = ScreenAdd
	s.form = NewAddForm(s.now(), func(txn model.Transaction) {
		s.ledger.Prepend(txn)
		s.Back()
	})
	return s.form
}

// Submit submits the open form.
func (s *Session) Submit() (model.Transaction, error) {
	if s.screen != ScreenAdd || s.form == nil {
		return model.Transaction{}, ErrNotOnAddScreen
	}
	return s.form.Submit()
}

// Back returns to the list screen, discarding any open form.
func (s *Session) Back() {
	s.screen = ScreenList
	s.form = nil
}

// ListView returns the derived views for the list screen.
func (s *Session) ListView() View {
	return View{
		Transactions: s.ledger.OrderedByDateDescending(),
		Balance:      s.ledger.RunningBalanceSeries(),
	}
}
