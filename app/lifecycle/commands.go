package lifecycle

import "github.com/vibast-solutions/ms-go-vendor-billing/app/entity"

// Command is a side effect requested by a transition. The service executes them in order.
type Command interface {
	command()
}

// PreparePayment computes terms and signs the redirect for Plan. It must succeed before any write.
type PreparePayment struct {
	Plan entity.Plan
}

type WriteProfile struct {
	Patch entity.ProfilePatch
}

type OpenRedirect struct{}

func (PreparePayment) command() {}
func (WriteProfile) command()   {}
func (OpenRedirect) command()   {}

// Gate is a confirmation the vendor must give before the selection proceeds.
type Gate string

const (
	GateNone      Gate = ""
	GateDowngrade Gate = "downgrade"
	GateTerms     Gate = "terms"
)

type Transition struct {
	Next     State
	Commands []Command
	Gate     Gate
}
