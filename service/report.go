package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"apartment-journey/domain"
)

const estimateDisclaimer = "All figures are estimates, not legal or tax advice."

type SummaryRow struct {
	Item   string
	Amount float64
}

type Summary struct {
	Title     string
	Rows      []SummaryRow
	Outcomes  domain.Outcomes
	Narrative string
}

func DealSummary(r domain.DealResult) Summary {
	return Summary{
		Title: "Apartment Deal Summary",
		Rows: []SummaryRow{
			{"Apartment Price", r.Price},
			{"Mortgage Amount", r.MortgageAmount},
			{"Purchase Tax", r.Fees.PurchaseTax},
			{"Agent Fee", r.Fees.Agent},
			{"Lawyer Fee", r.Fees.Lawyer},
			{"Mortgage Advisor Fee", r.Fees.Advisor},
			{"Total Additional Costs", r.TotalCosts},
			{"Total Cash Investment", r.CashInvestment},
			{fmt.Sprintf("Estimated Monthly Mortgage Payment (%d years)", r.TermYears), r.MonthlyPayment},
		},
		Outcomes:  r.Outcomes,
		Narrative: dealNarrative(r),
	}
}

func BudgetSummary(r domain.SolverResult) Summary {
	paymentLabel := lo.Ternary(r.MortgageAmount > 0,
		fmt.Sprintf("Monthly Mortgage Payment (%d years)", r.TermYears),
		"Monthly Payment (Cash Purchase)",
	)

	return Summary{
		Title: "Apartment Budget Analysis",
		Rows: []SummaryRow{
			{"Apartment Price", r.Price},
			{"Total Cash Available", r.AvailableCash},
			{"Down Payment", r.DownPayment},
			{"Mortgage Amount", r.MortgageAmount},
			{"Purchase Tax", r.Fees.PurchaseTax},
			{"Agent Fee", r.Fees.Agent},
			{"Lawyer Fee", r.Fees.Lawyer},
			{"Mortgage Advisor Fee", r.Fees.Advisor},
			{"Total Transaction Fees", r.TotalFees},
			{"Remaining Cash After Purchase", r.RemainingCash},
			{paymentLabel, r.MonthlyPayment},
		},
		Outcomes:  r.Outcomes,
		Narrative: budgetNarrative(r),
	}
}

// WriteCSV writes the two-column item/amount table.
func WriteCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Item", "Amount (NIS)"}); err != nil {
		return fmt.Errorf("csv.Write: %w", err)
	}

	records := lo.Map(rows, func(row SummaryRow, _ int) []string {
		return []string{row.Item, strconv.FormatFloat(row.Amount, 'f', 2, 64)}
	})

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("csv.WriteAll: %w", err)
	}

	return nil
}

//nolint:gochecknoglobals
var printer = message.NewPrinter(language.English)

// FormatNIS rounds to whole shekels and groups thousands: "1,978,745 NIS".
func FormatNIS(amount float64) string {
	return printer.Sprintf("%d NIS", int64(math.Round(amount)))
}

func dealNarrative(r domain.DealResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "For an apartment at %s with a mortgage of %s, you pay %s in purchase tax and %s in professional fees. ",
		FormatNIS(r.Price), FormatNIS(r.MortgageAmount), FormatNIS(r.Fees.PurchaseTax), FormatNIS(r.Fees.Professional()))
	fmt.Fprintf(&b, "You need %s in cash in total. ", FormatNIS(r.CashInvestment))

	if r.MortgageAmount > 0 {
		fmt.Fprintf(&b, "The monthly payment over %d years is about %s. ", r.TermYears, FormatNIS(r.MonthlyPayment))
	}
	if r.Outcomes.Has(domain.OutcomeLTVExceeded) {
		fmt.Fprintf(&b, "The mortgage is above the maximum of %s for your profile. ", FormatNIS(r.MaxMortgage))
	}

	b.WriteString(estimateDisclaimer)

	return b.String()
}

func budgetNarrative(r domain.SolverResult) string {
	var b strings.Builder

	if r.Price <= 0 {
		fmt.Fprintf(&b, "With %s in cash the transaction costs cannot be covered. ", FormatNIS(r.AvailableCash))
	} else {
		fmt.Fprintf(&b, "You can afford an apartment of about %s: %s down payment and a %s mortgage, with %s in fees and tax. ",
			FormatNIS(r.Price), FormatNIS(r.DownPayment), FormatNIS(r.MortgageAmount), FormatNIS(r.TotalFees))
	}

	if r.MortgageAmount > 0 {
		fmt.Fprintf(&b, "The monthly payment over %d years is about %s. ", r.TermYears, FormatNIS(r.MonthlyPayment))
	} else {
		b.WriteString("This is a cash purchase with no monthly payment. ")
	}

	if !r.Converged {
		b.WriteString("The calculation did not settle, treat the price as an approximation. ")
	}
	if r.Outcomes.Has(domain.OutcomeInsufficientCash) {
		b.WriteString("Your cash does not cover the down payment and fees. ")
	}
	if r.Outcomes.Has(domain.OutcomeLTVExceeded) {
		fmt.Fprintf(&b, "The mortgage is above %.0f%% of the price allowed for your profile. ", r.MaxLTV*100)
	}

	b.WriteString(estimateDisclaimer)

	return b.String()
}
