package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// MinimumCharge is the smallest amount the gateway accepts to tokenize a card.
// It is the whole initial charge of a trial and the floor of a pro-rata charge.
var MinimumCharge = decimal.RequireFromString("5.00")

// Terms holds wire-formatted amounts (two decimals) and the first recurring billing date.
type Terms struct {
	InitialAmount   string
	RecurringAmount string
	BillingDate     string
}

// ComputeTerms derives the charges for a new subscription starting on today.
//
// Trial: the minimum charge now, the full price from the same day next month.
// Pro-rata: the remaining days of the current month (today included) now, the full price
// from the 1st of next month.
func ComputeTerms(monthlyPrice int64, isTrial bool, today time.Time) Terms {
	price := decimal.NewFromInt(monthlyPrice)
	recurring := FormatAmount(price)

	if isTrial {
		return Terms{
			InitialAmount:   FormatAmount(MinimumCharge),
			RecurringAmount: recurring,
			BillingDate:     AddCalendarMonth(today).Format(DateLayout),
		}
	}

	daysInMonth := DaysInMonth(today)
	remainingDays := daysInMonth - today.Day() + 1

	initial := price.Mul(decimal.NewFromInt(int64(remainingDays))).Div(decimal.NewFromInt(int64(daysInMonth)))
	if initial.LessThan(MinimumCharge) {
		initial = MinimumCharge
	}

	return Terms{
		InitialAmount:   FormatAmount(initial),
		RecurringAmount: recurring,
		BillingDate:     FirstOfNextMonth(today).Format(DateLayout),
	}
}

// FormatAmount renders a currency value with exactly two fractional digits, rounding half away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func DaysInMonth(day time.Time) int {
	return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, day.Location()).Day()
}

func FirstOfNextMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, day.Location())
}

// AddCalendarMonth moves to the same day-of-month one month later. Days that do not exist
// in the target month overflow into the following month (Jan 31 -> Mar 2 in a leap year).
func AddCalendarMonth(day time.Time) time.Time {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start.AddDate(0, 1, 0)
}
