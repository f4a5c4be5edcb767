package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RenewalBuckets counts the day's renewal loans by state.
type RenewalBuckets struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Pending   int `json:"pending"`
	Due       int `json:"due"`
	Completed int `json:"completed"`
}

// DailyReport is the closing view for one calendar date.
type DailyReport struct {
	Date           time.Time       `json:"date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Collections    decimal.Decimal `json:"collections"`
	Transfers      decimal.Decimal `json:"transfers"`
	Disbursements  decimal.Decimal `json:"disbursements"`
	Expenses       decimal.Decimal `json:"expenses"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	PaymentCount   int             `json:"payment_count"`
	NewLoans       int             `json:"new_loans"`
	NewClients     int             `json:"new_clients"`
	VisitedClients int             `json:"visited_clients"`
	PendingClients int             `json:"pending_clients"`
	OverdueClients int             `json:"overdue_clients"`
	Renewals       RenewalBuckets  `json:"renewals"`
}

// PeriodReport aggregates the financial picture over [From, To].
type PeriodReport struct {
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	CapitalInvested    decimal.Decimal `json:"capital_invested"`
	CapitalRecovered   decimal.Decimal `json:"capital_recovered"`
	CapitalUnrecovered decimal.Decimal `json:"capital_unrecovered"`
	InterestGenerated  decimal.Decimal `json:"interest_generated"`
	InterestCollected  decimal.Decimal `json:"interest_collected"`
	LateFeeRevenue     decimal.Decimal `json:"late_fee_revenue"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	ROI                decimal.Decimal `json:"roi"`
}

// DailyClosing is the persisted snapshot of a day's report, written by the
// scheduler for audit.
type DailyClosing struct {
	Date           time.Time       `json:"date" db:"date"`
	OpeningBalance decimal.Decimal `json:"opening_balance" db:"opening_balance"`
	Collections    decimal.Decimal `json:"collections" db:"collections"`
	Transfers      decimal.Decimal `json:"transfers" db:"transfers"`
	Disbursements  decimal.Decimal `json:"disbursements" db:"disbursements"`
	Expenses       decimal.Decimal `json:"expenses" db:"expenses"`
	CashBalance    decimal.Decimal `json:"cash_balance" db:"cash_balance"`
	NewLoans       int             `json:"new_loans" db:"new_loans"`
	NewClients     int             `json:"new_clients" db:"new_clients"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}
