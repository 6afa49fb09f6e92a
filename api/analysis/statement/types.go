package statement

import (
	"time"

	"ExtratoAnalytics/api/constants"
)

// Direction is the wire literal for a transaction's side.
type Direction string

const (
	Credit Direction = "C"
	Debit  Direction = "D"
)

// ISODate renders as "2006-01-02" in JSON; a nil *ISODate renders as null.
type ISODate struct {
	time.Time
}

func (d ISODate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(constants.DateFormat) + `"`), nil
}

// Label is the human form used on spreadsheets, with the no-date sentinel.
func (d *ISODate) Label() string {
	if d == nil {
		return constants.NoDateLabel
	}
	return d.Format(constants.DateFormat)
}

// Transaction is the canonical statement line after normalization. Amount is
// always positive; the side lives in Direction.
type Transaction struct {
	Date        *ISODate  `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Document    string    `json:"document"`
}

// CategorizedTransaction attaches the resolved category.
type CategorizedTransaction struct {
	Transaction
	Category string `json:"category"`
}

// Bucket is the grouped-and-summed result for one category within a cohort.
type Bucket struct {
	Category string                   `json:"category"`
	Total    float64                  `json:"total"`
	Count    int                      `json:"count"`
	Percent  float64                  `json:"percent"`
	Items    []CategorizedTransaction `json:"items"`
}

// Statistics summarizes one analyzed statement.
type Statistics struct {
	TotalTransactions  int     `json:"total_transactions"`
	TotalCredits       int     `json:"total_credits"`
	TotalDebits        int     `json:"total_debits"`
	TotalAmount        float64 `json:"total_amount"`
	TotalAmountCredits float64 `json:"total_amount_credits"`
	TotalAmountDebits  float64 `json:"total_amount_debits"`
}

// Report is the full analysis result handed to the HTTP layer.
type Report struct {
	Statistics        Statistics `json:"statistics"`
	CategoriesAll     []Bucket   `json:"categories_all"`
	CategoriesCredits []Bucket   `json:"categories_credits"`
	CategoriesDebits  []Bucket   `json:"categories_debits"`
}

func newDate(t *time.Time) *ISODate {
	if t == nil {
		return nil
	}
	return &ISODate{*t}
}
