package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 14, 30, 0, 0, time.UTC)
}

func TestComputeTermsTrialScenario(t *testing.T) {
	terms := ComputeTerms(599, true, date(2024, time.March, 15))

	if terms.InitialAmount != "5.00" {
		t.Fatalf("expected initial 5.00, got %s", terms.InitialAmount)
	}
	if terms.RecurringAmount != "599.00" {
		t.Fatalf("expected recurring 599.00, got %s", terms.RecurringAmount)
	}
	if terms.BillingDate != "2024-04-15" {
		t.Fatalf("expected billing date 2024-04-15, got %s", terms.BillingDate)
	}
}

func TestComputeTermsProRataLeapFebruary(t *testing.T) {
	terms := ComputeTerms(199, false, date(2024, time.February, 20))

	if terms.InitialAmount != "68.62" {
		t.Fatalf("expected initial 68.62, got %s", terms.InitialAmount)
	}
	if terms.RecurringAmount != "199.00" {
		t.Fatalf("expected recurring 199.00, got %s", terms.RecurringAmount)
	}
	if terms.BillingDate != "2024-03-01" {
		t.Fatalf("expected billing date 2024-03-01, got %s", terms.BillingDate)
	}
}

func TestComputeTermsTrialInitialIgnoresPrice(t *testing.T) {
	for _, price := range []int64{0, 1, 199, 599, 1499, 100000} {
		terms := ComputeTerms(price, true, date(2025, time.June, 3))
		if terms.InitialAmount != "5.00" {
			t.Fatalf("price %d: expected 5.00, got %s", price, terms.InitialAmount)
		}
	}
}

func TestComputeTermsRecurringIndependentOfDate(t *testing.T) {
	start := date(2023, time.January, 1)
	for i := 0; i < 400; i += 7 {
		day := start.AddDate(0, 0, i)
		terms := ComputeTerms(1499, false, day)
		if terms.RecurringAmount != "1499.00" {
			t.Fatalf("%s: unexpected recurring %s", day.Format(DateLayout), terms.RecurringAmount)
		}
	}
}

func TestComputeTermsProRataNeverBelowMinimum(t *testing.T) {
	start := date(2024, time.January, 1)
	for i := 0; i < 366; i++ {
		day := start.AddDate(0, 0, i)
		for _, price := range []int64{0, 10, 199, 599} {
			terms := ComputeTerms(price, false, day)
			initial := decimal.RequireFromString(terms.InitialAmount)
			if initial.LessThan(MinimumCharge) {
				t.Fatalf("%s price %d: initial %s below minimum", day.Format(DateLayout), price, terms.InitialAmount)
			}
		}
	}
}

func TestComputeTermsProRataLastDayUsesMinimum(t *testing.T) {
	terms := ComputeTerms(100, false, date(2024, time.April, 30))
	if terms.InitialAmount != "5.00" {
		t.Fatalf("expected floor at 5.00, got %s", terms.InitialAmount)
	}
	if terms.BillingDate != "2024-05-01" {
		t.Fatalf("unexpected billing date %s", terms.BillingDate)
	}
}

func TestComputeTermsProRataFirstDayChargesFullMonth(t *testing.T) {
	for _, month := range []time.Month{time.January, time.February, time.April, time.July} {
		terms := ComputeTerms(599, false, date(2025, month, 1))
		if terms.InitialAmount != "599.00" {
			t.Fatalf("%s: expected full month 599.00, got %s", month, terms.InitialAmount)
		}
	}
}

func TestComputeTermsBillingDateRollsOverYear(t *testing.T) {
	proRata := ComputeTerms(199, false, date(2024, time.December, 10))
	if proRata.BillingDate != "2025-01-01" {
		t.Fatalf("expected 2025-01-01, got %s", proRata.BillingDate)
	}

	trial := ComputeTerms(199, true, date(2024, time.December, 10))
	if trial.BillingDate != "2025-01-10" {
		t.Fatalf("expected 2025-01-10, got %s", trial.BillingDate)
	}
}

func TestComputeTermsTrialShortMonthOverflow(t *testing.T) {
	cases := []struct {
		today time.Time
		want  string
	}{
		{date(2024, time.January, 31), "2024-03-02"},
		{date(2023, time.January, 31), "2023-03-03"},
		{date(2024, time.March, 31), "2024-05-01"},
		{date(2024, time.January, 30), "2024-03-01"},
		{date(2024, time.January, 29), "2024-02-29"},
	}
	for _, tc := range cases {
		terms := ComputeTerms(599, true, tc.today)
		if terms.BillingDate != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.today.Format(DateLayout), tc.want, terms.BillingDate)
		}
	}
}

func TestComputeTermsUsesCallerLocation(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	lateUTC := time.Date(2024, time.March, 31, 23, 30, 0, 0, time.UTC)

	terms := ComputeTerms(199, false, lateUTC.In(loc))
	if terms.BillingDate != "2024-05-01" {
		t.Fatalf("expected April in SAST to bill from 2024-05-01, got %s", terms.BillingDate)
	}
}

func TestFormatAmountRoundsHalfAwayFromZero(t *testing.T) {
	if got := FormatAmount(decimal.RequireFromString("10.005")); got != "10.01" {
		t.Fatalf("expected 10.01, got %s", got)
	}
	if got := FormatAmount(decimal.NewFromInt(7)); got != "7.00" {
		t.Fatalf("expected 7.00, got %s", got)
	}
}
