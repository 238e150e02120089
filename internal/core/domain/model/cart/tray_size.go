package cart

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// TraySize is the portion unit used for catering prices.
type TraySize int

const (
	// UnknownTraySize is the zero value and is never valid.
	UnknownTraySize TraySize = iota
	Full
	Half
	Quarter
)

func getTraySizeStrings() map[TraySize]string {
	return map[TraySize]string{
		UnknownTraySize: "unknown",
		Full:            "full",
		Half:            "half",
		Quarter:         "quarter",
	}
}

// ParseTraySize accepts "full", "half" or "quarter", ignoring case.
func ParseTraySize(s string) (TraySize, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for size, name := range getTraySizeStrings() {
		if size != UnknownTraySize && name == normalized {
			return size, nil
		}
	}
	return UnknownTraySize, errs.NewValueIsInvalidErrorWithCause(
		"tray size is invalid",
		fmt.Errorf("%q is not one of full, half, quarter", s),
	)
}

// Validate rejects UnknownTraySize and out of range values.
func (t TraySize) Validate() error {
	if t != Full && t != Half && t != Quarter {
		return errs.NewValueIsInvalidErrorWithCause("tray size is invalid", fmt.Errorf("%d is not a valid tray size", t))
	}
	return nil
}

// String returns the persisted name of the size.
func (t TraySize) String() string {
	if s, ok := getTraySizeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
