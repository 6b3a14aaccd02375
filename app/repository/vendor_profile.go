package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

var (
	ErrVendorProfileNotFound      = errors.New("vendor profile not found")
	ErrVendorProfileAlreadyExists = errors.New("vendor profile already exists")
)

const vendorProfileColumns = `
		id, email, current_tier, pending_tier, pending_since, is_approved,
		provinces, regions, registration_province, registration_region,
		intended_tier, payment_token, created_at, updated_at`

type VendorProfileRepository struct {
	db DBTX
}

func NewVendorProfileRepository(db DBTX) *VendorProfileRepository {
	return &VendorProfileRepository{db: db}
}

func (r *VendorProfileRepository) Create(ctx context.Context, profile *entity.VendorProfile) error {
	provinces, err := encodeStringList(profile.Provinces)
	if err != nil {
		return err
	}
	regions, err := encodeStringList(profile.Regions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vendor_profiles (
			id, email, current_tier, pending_tier, pending_since, is_approved,
			provinces, regions, registration_province, registration_region,
			intended_tier, payment_token, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		profile.ID,
		strings.TrimSpace(profile.Email),
		profile.CurrentTier,
		nullableStringValue(profile.PendingTier),
		nullableTimeValue(profile.PendingSince),
		profile.IsApproved,
		provinces,
		regions,
		profile.RegistrationProvince,
		profile.RegistrationRegion,
		nullableStringValue(profile.IntendedTier),
		nullableStringValue(profile.PaymentToken),
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrVendorProfileAlreadyExists
		}
		return err
	}

	return nil
}

func (r *VendorProfileRepository) FindByID(ctx context.Context, id string) (*entity.VendorProfile, error) {
	query := `SELECT` + vendorProfileColumns + `
		FROM vendor_profiles
		WHERE id = ?
	`

	item := &entity.VendorProfile{}
	if err := scanVendorProfile(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

// ApplyPatch writes only the columns present in patch, plus updated_at. pending_since follows
// pending_tier: stamped with updatedAt when a tier is set, NULL when it is cleared.
func (r *VendorProfileRepository) ApplyPatch(ctx context.Context, id string, patch entity.ProfilePatch, updatedAt time.Time) error {
	sets, args, err := patchAssignments(patch, updatedAt)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt, id)

	query := "UPDATE vendor_profiles SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrVendorProfileNotFound
	}

	return nil
}

// ListPendingBefore returns profiles whose payment has been outstanding since before cutoff.
func (r *VendorProfileRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error) {
	query := `SELECT` + vendorProfileColumns + `
		FROM vendor_profiles
		WHERE pending_tier IS NOT NULL
		  AND COALESCE(pending_since, updated_at) < ?
		ORDER BY COALESCE(pending_since, updated_at) ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.VendorProfile, 0)
	for rows.Next() {
		item := &entity.VendorProfile{}
		if err := scanVendorProfile(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func patchAssignments(patch entity.ProfilePatch, at time.Time) ([]string, []interface{}, error) {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 9)

	if patch.CurrentTier != nil {
		sets = append(sets, "current_tier = ?")
		args = append(args, *patch.CurrentTier)
	}
	if patch.ClearPendingTier {
		sets = append(sets, "pending_tier = NULL", "pending_since = NULL")
	} else if patch.PendingTier != nil {
		sets = append(sets, "pending_tier = ?", "pending_since = ?")
		args = append(args, *patch.PendingTier, at)
	}
	if patch.IsApproved != nil {
		sets = append(sets, "is_approved = ?")
		args = append(args, *patch.IsApproved)
	}
	if patch.Provinces != nil {
		encoded, err := encodeStringList(patch.Provinces)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, "provinces = ?")
		args = append(args, encoded)
	}
	if patch.Regions != nil {
		encoded, err := encodeStringList(patch.Regions)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, "regions = ?")
		args = append(args, encoded)
	}
	if patch.ClearIntendedTier {
		sets = append(sets, "intended_tier = NULL")
	}

	return sets, args, nil
}

func scanVendorProfile(scanner rowScanner, item *entity.VendorProfile) error {
	var pendingTier sql.NullString
	var pendingSince sql.NullTime
	var intendedTier sql.NullString
	var paymentToken sql.NullString
	var provinces []byte
	var regions []byte

	err := scanner.Scan(
		&item.ID,
		&item.Email,
		&item.CurrentTier,
		&pendingTier,
		&pendingSince,
		&item.IsApproved,
		&provinces,
		&regions,
		&item.RegistrationProvince,
		&item.RegistrationRegion,
		&intendedTier,
		&paymentToken,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if item.Provinces, err = decodeStringList(provinces); err != nil {
		return fmt.Errorf("decode provinces: %w", err)
	}
	if item.Regions, err = decodeStringList(regions); err != nil {
		return fmt.Errorf("decode regions: %w", err)
	}
	item.PendingTier = nullStringPtr(pendingTier)
	if pendingSince.Valid {
		since := pendingSince.Time
		item.PendingSince = &since
	} else {
		item.PendingSince = nil
	}
	item.IntendedTier = nullStringPtr(intendedTier)
	item.PaymentToken = nullStringPtr(paymentToken)

	return nil
}

func encodeStringList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func decodeStringList(raw []byte) ([]string, error) {
	values := make([]string, 0)
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = make([]string, 0)
	}
	return values, nil
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	value := v.String
	return &value
}
