package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/moneynotes-dev/moneynotes/internal/ledger"
	"github.com/moneynotes-dev/moneynotes/internal/model"
)

var currencySymbols = map[string]string{
	"IDR": "Rp",
	"USD": "$",
	"JPY": "¥",
}

func symbol(code string) string {
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return code + " "
}

// formatAmount renders a transaction amount like "+ Rp5000000".
func formatAmount(txn model.Transaction, code string) string {
	sign, abs := txn.SignedAbs()
	return fmt.Sprintf("%s %s%d", sign, symbol(code), abs)
}

func formatBalance(v int64, code string) string {
	if v < 0 {
		return "-" + symbol(code) + strconv.FormatInt(-v, 10)
	}
	return symbol(code) + strconv.FormatInt(v, 10)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

// renderTransactions writes txns in the given order.
func renderTransactions(w io.Writer, txns []model.Transaction, code string) {
	table := newTable(w, "Date", "Time", "Category", "Amount")
	for _, txn := range txns {
		table.Append([]string{
			txn.Timestamp.Format(ledger.DateFormat),
			txn.Timestamp.Format(ledger.TimeFormat),
			txn.Category,
			formatAmount(txn, code),
		})
	}
	table.Render()
}

// renderBalance writes the running balance next to each ascending transaction.
func renderBalance(w io.Writer, txns []model.Transaction, series []ledger.BalancePoint, code string) {
	table := newTable(w, "#", "Date", "Category", "Amount", "Balance")
	for i, p := range series {
		txn := txns[i]
		table.Append([]string{
			strconv.Itoa(p.Index),
			txn.Timestamp.Format(ledger.DateFormat + " " + ledger.TimeFormat),
			txn.Category,
			formatAmount(txn, code),
			formatBalance(p.Balance, code),
		})
	}
	table.Render()
}
