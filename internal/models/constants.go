package models

// TransactionType is the derived polarity of a transaction amount.
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
	TypeNeutral TransactionType = "neutral"
)

// Categories offered by the add-transaction form
const (
	CategorySubscription = "Subscription"
	CategoryShopping     = "Shopping"
	CategoryTransport    = "Transport"
	CategoryUtilities    = "Utilities"
	CategoryEducation    = "Education"
	CategoryIncome       = "Income"
)

// Accounts offered by the add-transaction form
const (
	AccountGTBank     = "GTBank"
	AccountZenithBank = "Zenith Bank"
	AccountOpay       = "Opay"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "NGN"

// FormCategories lists the categories in the order the form offers them.
var FormCategories = []string{
	CategorySubscription,
	CategoryShopping,
	CategoryTransport,
	CategoryUtilities,
	CategoryEducation,
}

// FormAccounts lists the accounts in the order the form offers them.
var FormAccounts = []string{
	AccountGTBank,
	AccountZenithBank,
	AccountOpay,
}

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
