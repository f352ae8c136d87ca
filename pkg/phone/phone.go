// Package phone validates and normalizes phone numbers before they are
// compared for lead deduplication or shown in exports.
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number has no country prefix.
const DefaultRegion = "US"

// Validate reports whether raw parses as a possible phone number.
func Validate(raw, region string) bool {
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Normalize formats raw in E.164. Unparseable input is returned unchanged
// so imports never lose the original value.
func Normalize(raw, region string) string {
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// Pretty formats raw for display in the national convention.
func Pretty(raw, region string) (string, error) {
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL), nil
}
