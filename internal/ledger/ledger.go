package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/moneynotes-dev/moneynotes/internal/model"
)

// BalancePoint is one sample of the running balance chart.
type BalancePoint struct {
	Index   int
	Balance int64
}

// Ledger is an in-memory, ordered collection of transactions.
//
// A Ledger has a single owner and is not safe for concurrent use.
// Every successful mutation notifies subscribers synchronously.
type Ledger struct {
	entries []entry
	nextSeq uint64
	subs    map[int]func(*Ledger)
	nextSub int
}

type entry struct {
	txn model.Transaction
	seq uint64 // insertion order; breaks timestamp ties
}

// Record is a stored transaction together with its insertion sequence.
// Persisting Seq keeps timestamp ties stable across save and load.
type Record struct {
	Transaction model.Transaction
	Seq         uint64
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{subs: make(map[int]func(*Ledger))}
}

// NewSeeded creates a Ledger holding the sample transactions used on cold start.
func NewSeeded(now time.Time) *Ledger {
	l := New()
	l.Seed(now)
	return l
}

// SampleTransactions returns the fixed cold-start data relative to now.
func SampleTransactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{Category: "Gaji", Amount: 5000000, Timestamp: now.Add(-time.Second)},
		{Category: "Makan", Amount: -25000, Timestamp: now},
		{Category: "Transport", Amount: -15000, Timestamp: now.Add(time.Second)},
	}
}

// Seed appends the sample transactions.
func (l *Ledger) Seed(now time.Time) {
	for _, txn := range SampleTransactions(now) {
		l.Append(txn)
	}
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Insert places txn at pos in storage order. pos is clamped to [0, Len()].
func (l *Ledger) Insert(txn model.Transaction, pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.entries) {
		pos = len(l.entries)
	}
	e := entry{txn: txn, seq: l.nextSeq}
	l.nextSeq++

	l.entries = append(l.entries, entry{})
	copy(l.entries[pos+1:], l.entries[pos:])
	l.entries[pos] = e

	l.notify()
}

// Prepend inserts txn at the head, the position used for user-entered transactions.
func (l *Ledger) Prepend(txn model.Transaction) {
	l.Insert(txn, 0)
}

// Append inserts txn at the tail, the position used while seeding or loading.
func (l *Ledger) Append(txn model.Transaction) {
	l.Insert(txn, len(l.entries))
}

// All returns the transactions in storage order.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.txn
	}
	return out
}

// Records returns the transactions with their sequence numbers, in storage order.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.entries))
	for i, e := range l.entries {
		out[i] = Record{Transaction: e.txn, Seq: e.seq}
	}
	return out
}

// Restore appends a previously stored record at the tail, keeping its
// sequence number. Later inserts sequence after every restored record.
// Subscribers are not notified.
func (l *Ledger) Restore(r Record) {
	l.entries = append(l.entries, entry{txn: r.Transaction, seq: r.Seq})
	if r.Seq >= l.nextSeq {
		l.nextSeq = r.Seq + 1
	}
}

// Total returns the sum of all amounts, clamped to the int64 range.
func (l *Ledger) Total() int64 {
	var sum int64
	for _, e := range l.entries {
		sum = addClamped(sum, e.txn.Amount)
	}
	return sum
}

// OrderedByDateDescending returns all transactions, most recent first.
// Equal timestamps put the most recently inserted transaction first.
func (l *Ledger) OrderedByDateDescending() []model.Transaction {
	sorted := l.ascending()
	out := make([]model.Transaction, len(sorted))
	for i, e := range sorted {
		out[len(sorted)-1-i] = e.txn
	}
	return out
}

// OrderedByDateAscending returns all transactions, oldest first.
// Equal timestamps put the earliest inserted transaction first.
func (l *Ledger) OrderedByDateAscending() []model.Transaction {
	sorted := l.ascending()
	out := make([]model.Transaction, len(sorted))
	for i, e := range sorted {
		out[i] = e.txn
	}
	return out
}

// RunningBalanceSeries folds the ascending sequence into cumulative sums.
// It is recomputed on every call.
func (l *Ledger) RunningBalanceSeries() []BalancePoint {
	return RunningBalance(l.OrderedByDateAscending())
}

// RunningBalance computes cumulative sums over txns in the order given.
// Sums saturate at the int64 bounds instead of wrapping.
func RunningBalance(txns []model.Transaction) []BalancePoint {
	points := make([]BalancePoint, 0, len(txns))
	var sum int64
	for i, txn := range txns {
		sum = addClamped(sum, txn.Amount)
		points = append(points, BalancePoint{Index: i, Balance: sum})
	}
	return points
}

// Subscribe registers fn to run after every mutation. The returned function
// removes the subscription.
func (l *Ledger) Subscribe(fn func(*Ledger)) (unsubscribe func()) {
	if l.subs == nil {
		l.subs = make(map[int]func(*Ledger))
	}
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return func() { delete(l.subs, id) }
}

func (l *Ledger) notify() {
	ids := make([]int, 0, len(l.subs))
	for id := range l.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := l.subs[id]; ok {
			fn(l)
		}
	}
}

func (l *Ledger) ascending() []entry {
	sorted := make([]entry, len(l.entries))
	copy(sorted, l.entries)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.txn.Timestamp.Equal(b.txn.Timestamp) {
			return a.txn.Timestamp.Before(b.txn.Timestamp)
		}
		return a.seq < b.seq
	})
	return sorted
}

func addClamped(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}
