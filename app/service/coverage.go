package service

import (
	"fmt"
	"strings"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

func validateCoverage(provinces, regions []string, limit entity.RegionalLimit) error {
	for _, province := range provinces {
		if !catalog.IsProvince(province) {
			return fmt.Errorf("%w: province %q", ErrUnknownLocation, province)
		}
	}
	for _, region := range regions {
		if !catalog.RegionBelongsTo(region, provinces) {
			return fmt.Errorf("%w: region %q is not in the selected provinces", ErrUnknownLocation, region)
		}
	}
	if !limit.Allows(len(provinces), len(regions)) {
		return fmt.Errorf("%w: %d provinces, %d regions", ErrCoverageExceedsPlan, len(provinces), len(regions))
	}
	return nil
}

// normalizeList trims entries and drops blanks and duplicates, keeping first-seen order.
func normalizeList(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
