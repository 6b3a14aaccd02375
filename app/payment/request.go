package payment

const (
	SubscriptionTypeRecurring = "1"
	FrequencyMonthly          = "3"
	CyclesUntilCancelled      = "0"
)

// PaymentRequest is built per initiation, signed and serialized into the redirect URL. It is never stored.
type PaymentRequest struct {
	MerchantID       string
	MerchantKey      string
	ReturnURL        string
	CancelURL        string
	NotifyURL        string
	EmailAddress     string
	PaymentID        string
	Amount           string
	ItemName         string
	ItemDescription  string
	SubscriptionType string
	BillingDate      string
	RecurringAmount  string
	Frequency        string
	Cycles           string
}

func (r PaymentRequest) Fields() Fields {
	return Fields{
		"merchant_id":       r.MerchantID,
		"merchant_key":      r.MerchantKey,
		"return_url":        r.ReturnURL,
		"cancel_url":        r.CancelURL,
		"notify_url":        r.NotifyURL,
		"email_address":     r.EmailAddress,
		"m_payment_id":      r.PaymentID,
		"amount":            r.Amount,
		"item_name":         r.ItemName,
		"item_description":  r.ItemDescription,
		"subscription_type": r.SubscriptionType,
		"billing_date":      r.BillingDate,
		"recurring_amount":  r.RecurringAmount,
		"frequency":         r.Frequency,
		"cycles":            r.Cycles,
	}
}
