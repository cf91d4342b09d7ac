// Package filter selects transactions matching the transaction-history criteria:
// a type tab, an optional calendar date, category, account and merchant search.
package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/models"
)

// Tab selects transactions by polarity.
type Tab string

// Tabs
const (
	TabAll      Tab = "all"
	TabIncome   Tab = "income"
	TabExpenses Tab = "expenses"
)

// Sentinels meaning "no restriction" for the category and account selectors.
const (
	AllCategories = "all-categories"
	AllAccounts   = "all-accounts"
)

// ParseTab accepts "all", "income", "expense" or "expenses" in any case. An empty
// string selects TabAll.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TabAll):
		return TabAll, nil
	case string(TabIncome):
		return TabIncome, nil
	case "expense", string(TabExpenses):
		return TabExpenses, nil
	default:
		return "", fmt.Errorf("unknown tab %q: expected all, income or expenses", s)
	}
}

// Criteria is the set of active filters. The zero value matches everything.
type Criteria struct {
	Tab      Tab
	Date     *time.Time
	Category string
	Account  string
	Search   string
}

// ActiveCount returns how many of the date, category and account filters are set.
func (c Criteria) ActiveCount() int {
	n := 0
	if c.Date != nil {
		n++
	}
	if categorySet(c.Category) {
		n++
	}
	if accountSet(c.Account) {
		n++
	}
	return n
}

// Reset returns criteria matching everything.
func (c Criteria) Reset() Criteria {
	return Criteria{Tab: TabAll}
}

// WithDate returns a copy with the date filter set to the calendar day of day.
func (c Criteria) WithDate(day time.Time) Criteria {
	d := dateutils.Day(day)
	c.Date = &d
	return c
}

func categorySet(category string) bool {
	return category != "" && category != AllCategories
}

func accountSet(account string) bool {
	return account != "" && account != AllAccounts
}

// Matches reports whether tx satisfies every active criterion.
func (c Criteria) Matches(tx models.Transaction) bool {
	return c.matchesTab(tx) &&
		c.matchesDate(tx) &&
		(!categorySet(c.Category) || tx.Category == c.Category) &&
		(!accountSet(c.Account) || tx.Account == c.Account) &&
		c.matchesSearch(tx)
}

func (c Criteria) matchesTab(tx models.Transaction) bool {
	switch c.Tab {
	case TabIncome:
		return tx.IsIncome()
	case TabExpenses:
		return tx.IsExpense()
	default:
		return true
	}
}

func (c Criteria) matchesDate(tx models.Transaction) bool {
	if c.Date == nil {
		return true
	}
	return dateutils.SameDay(tx.Date, *c.Date)
}

func (c Criteria) matchesSearch(tx models.Transaction) bool {
	if c.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Merchant), strings.ToLower(c.Search))
}

// Apply returns the transactions matching c in their original order. The input
// slice is never modified.
func Apply(txs []models.Transaction, c Criteria) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if c.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// Options returns the distinct categories and accounts of txs, sorted, for the
// filter selectors.
func Options(txs []models.Transaction) (categories, accounts []string) {
	return distinctSorted(txs, func(tx models.Transaction) string { return tx.Category }),
		distinctSorted(txs, func(tx models.Transaction) string { return tx.Account })
}

func distinctSorted(txs []models.Transaction, key func(models.Transaction) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, tx := range txs {
		v := key(tx)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
