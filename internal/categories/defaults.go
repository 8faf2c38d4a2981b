package categories

// DefaultCategories returns the catalogue a new project starts with.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Gaji", Kind: KindIncome, Description: "Salary"},
		{Name: "Bonus", Kind: KindIncome, Description: "Bonuses and one-off income"},
		{Name: "Makan", Kind: KindExpense, Description: "Meals and groceries"},
		{Name: "Transport", Kind: KindExpense, Description: "Fuel, fares and parking"},
		{Name: "Belanja", Kind: KindExpense, Description: "Shopping"},
		{Name: "Tagihan", Kind: KindExpense, Description: "Utilities and bills"},
		{Name: "Hiburan", Kind: KindExpense},
	}
}
