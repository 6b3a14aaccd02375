package entity

import "time"

const TierBasic = "Basic"

type VendorProfile struct {
	ID                   string
	Email                string
	CurrentTier          string
	PendingTier          *string
	PendingSince         *time.Time
	IsApproved           bool
	Provinces            []string
	Regions              []string
	RegistrationProvince string
	RegistrationRegion   string
	IntendedTier         *string
	PaymentToken         *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// BaselineCoverage returns the single province and region recorded at registration.
func (p *VendorProfile) BaselineCoverage() ([]string, []string) {
	provinces := make([]string, 0, 1)
	regions := make([]string, 0, 1)
	if p.RegistrationProvince != "" {
		provinces = append(provinces, p.RegistrationProvince)
	}
	if p.RegistrationRegion != "" {
		regions = append(regions, p.RegistrationRegion)
	}
	return provinces, regions
}

// ProfilePatch is a partial update of a vendor profile. Nil fields are left untouched.
// ClearPendingTier and ClearIntendedTier write NULL and win over the matching value field.
type ProfilePatch struct {
	CurrentTier       *string
	PendingTier       *string
	ClearPendingTier  bool
	IsApproved        *bool
	Provinces         []string
	Regions           []string
	ClearIntendedTier bool
}

func (p ProfilePatch) IsEmpty() bool {
	return p.CurrentTier == nil &&
		p.PendingTier == nil &&
		!p.ClearPendingTier &&
		p.IsApproved == nil &&
		p.Provinces == nil &&
		p.Regions == nil &&
		!p.ClearIntendedTier
}

// Apply mirrors a patch onto the in-memory profile the same way the store applies it to the row.
func (p *VendorProfile) Apply(patch ProfilePatch) {
	if patch.CurrentTier != nil {
		p.CurrentTier = *patch.CurrentTier
	}
	if patch.ClearPendingTier {
		p.PendingTier = nil
		p.PendingSince = nil
	} else if patch.PendingTier != nil {
		pending := *patch.PendingTier
		p.PendingTier = &pending
	}
	if patch.IsApproved != nil {
		p.IsApproved = *patch.IsApproved
	}
	if patch.Provinces != nil {
		p.Provinces = append([]string{}, patch.Provinces...)
	}
	if patch.Regions != nil {
		p.Regions = append([]string{}, patch.Regions...)
	}
	if patch.ClearIntendedTier {
		p.IntendedTier = nil
	}
}

// ApplyAt is Apply plus the timestamps the store writes with the patch: updated_at always,
// pending_since whenever a pending tier is set.
func (p *VendorProfile) ApplyAt(patch ProfilePatch, at time.Time) {
	p.Apply(patch)
	if !patch.ClearPendingTier && patch.PendingTier != nil {
		since := at
		p.PendingSince = &since
	}
	p.UpdatedAt = at
}
