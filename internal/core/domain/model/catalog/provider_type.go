package catalog

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// ProviderType classifies a provider's business.
type ProviderType int

const (
	UnknownProviderType ProviderType = iota
	Restaurant
	IndependentCaterer
	CloudKitchen
)

func getProviderTypeStrings() map[ProviderType]string {
	return map[ProviderType]string{
		UnknownProviderType: "unknown",
		Restaurant:          "restaurant",
		IndependentCaterer:  "independent_caterer",
		CloudKitchen:        "cloud_kitchen",
	}
}

// ParseProviderType accepts the persisted names, ignoring case.
func ParseProviderType(s string) (ProviderType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for pt, name := range getProviderTypeStrings() {
		if pt != UnknownProviderType && name == normalized {
			return pt, nil
		}
	}
	return UnknownProviderType, errs.NewValueIsInvalidErrorWithCause(
		"provider type is invalid",
		fmt.Errorf("%q is not a known provider type", s),
	)
}

func (p ProviderType) Validate() error {
	if p < Restaurant || p > CloudKitchen {
		return errs.NewValueIsInvalidErrorWithCause("provider type is invalid", fmt.Errorf("%d is not a valid provider type", p))
	}
	return nil
}

func (p ProviderType) String() string {
	if s, ok := getProviderTypeStrings()[p]; ok {
		return s
	}
	return "unknown"
}
