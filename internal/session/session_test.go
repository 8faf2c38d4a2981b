package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/model"
)

var fixedNow = time.Date(2024, 5, 1, 9, 41, 27, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestNewSeeded(t *testing.T) {
	s := NewSeeded(clock)
	assert.Equal(t, ScreenList, s.screen)
	assert.Nil(t, s.form)

	view := s.ListView()
	require.Len(t, view.Transactions, 3)
	assert.Equal(t, "Transport", view.Transactions[0].Category)
	require.Len(t, view.Balance, 3)
	assert.Equal(t, int64(4960000), view.Balance[2].Balance)
}

func TestNavigateToAdd_Defaults(t *testing.T) {
	s := NewSeeded(clock)
	form := s.NavigateToAdd()

	assert.Equal(t, ScreenAdd, s.screen)
	assert.Equal(t, "2024-05-01", form.Date)
	assert.Equal(t, "09:41", form.Time)
	assert.Empty(t, form.Category)
	assert.Empty(t, form.Amount)
}

func TestSubmit_Success(t *testing.T) {
	s := NewSeeded(clock)
	form := s.NavigateToAdd()
	form.Category = "Bonus"
	form.Amount = "100000"
	form.Time = "23:00"

	txn, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Bonus", txn.Category)
	assert.Equal(t, ScreenList, s.screen)
	assert.Nil(t, s.form)

	assert.Equal(t, 4, s.Ledger().Len())
	assert.Equal(t, txn, s.Ledger().All()[0], "new entries go to the head")
	assert.Equal(t, txn, s.ListView().Transactions[0])
}

func TestSubmit_ValidationFailureStaysOnAdd(t *testing.T) {
	s := NewSeeded(clock)
	form := s.NavigateToAdd()
	form.Category = "Makan"
	form.Amount = "abc"

	_, err := s.Submit()
	require.Error(t, err)
	var verrs ledger.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has(ledger.ReasonBadAmount))

	assert.Equal(t, ScreenAdd, s.screen)
	assert.Equal(t, 3, s.Ledger().Len())

	// Fixing the field lets the same form succeed.
	form.Amount = "-5000"
	_, err = s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Ledger().Len())
}

func TestSubmit_BadDateLeavesLedgerUnchanged(t *testing.T) {
	s := NewSeeded(clock)
	form := s.NavigateToAdd()
	form.Category = "Makan"
	form.Amount = "100"
	form.Date = "2024-13-40"

	_, err := s.Submit()
	require.Error(t, err)
	assert.Equal(t, 3, s.Ledger().Len())
}

func TestAddForm_CallbackAtMostOnce(t *testing.T) {
	var got []model.Transaction
	form := NewAddForm(fixedNow, func(txn model.Transaction) {
		got = append(got, txn)
	})
	form.Category = "Gaji"
	form.Amount = "1"

	_, err := form.Submit()
	require.NoError(t, err)
	assert.True(t, form.submitted)

	_, err = form.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, got, 1)
}

func TestSubmit_NotOnAddScreen(t *testing.T) {
	s := NewSeeded(clock)
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNotOnAddScreen)
}

func TestBack_DiscardsForm(t *testing.T) {
	s := NewSeeded(clock)
	form := s.NavigateToAdd()
	form.Category = "Makan"
	form.Amount = "100"
	s.Back()

	assert.Equal(t, ScreenList, s.screen)
	assert.Equal(t, 3, s.Ledger().Len())

	// The abandoned form can no longer reach the ledger through the session.
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNotOnAddScreen)
}
