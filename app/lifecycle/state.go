package lifecycle

import (
	"strings"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

type StateKind string

const (
	StateNoSubscription StateKind = "no_subscription"
	StatePendingPayment StateKind = "pending_payment"
	StateActive         StateKind = "active"
)

// State is one of NoSubscription, PendingPayment or Active.
type State interface {
	Kind() StateKind
}

type NoSubscription struct{}

// PendingPayment means a redirect to the gateway is outstanding. Current may be empty.
type PendingPayment struct {
	Current string
	Target  string
}

type Active struct {
	Tier string
}

func (NoSubscription) Kind() StateKind { return StateNoSubscription }
func (PendingPayment) Kind() StateKind { return StatePendingPayment }
func (Active) Kind() StateKind         { return StateActive }

func Derive(profile *entity.VendorProfile) State {
	current := strings.TrimSpace(profile.CurrentTier)
	if profile.PendingTier != nil && *profile.PendingTier != "" {
		return PendingPayment{Current: current, Target: *profile.PendingTier}
	}
	if current != "" {
		return Active{Tier: current}
	}
	return NoSubscription{}
}
