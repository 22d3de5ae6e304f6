package order

import (
	"fmt"
	"regexp"
	"strings"

	"shop/internal/pkg/errs"
)

const (
	orderNumberPrefix    = "ORD"
	maxOrderNumberLength = 20
	maxOrderSequence     = 999999
)

var standardOrderNumber = regexp.MustCompile(`^ORD-[0-9]{4}-[0-9]{6}$`)

// OrderNumber is the externally visible order reference, normally
// "ORD-{year}-{sequence:06}" (e.g. ORD-2024-000123). Numbers supplied from
// elsewhere are accepted as long as they are non-empty and at most 20 characters.
type OrderNumber struct {
	value string
}

// NewOrderNumber formats the standard order number for a year and a
// per-year sequence in 1..999999.
func NewOrderNumber(year int, sequence int64) (OrderNumber, error) {
	if year < 1000 || year > 9999 {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number year", year, 1000, 9999)
	}
	if sequence < 1 || sequence > maxOrderSequence {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, maxOrderSequence)
	}

	return OrderNumber{value: fmt.Sprintf("%s-%04d-%06d", orderNumberPrefix, year, sequence)}, nil
}

// ParseOrderNumber accepts any non-blank value of at most 20 characters.
func ParseOrderNumber(s string) (OrderNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if len(s) > maxOrderNumberLength {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError("order number length", len(s), 1, maxOrderNumberLength)
	}
	return OrderNumber{value: s}, nil
}

func (n OrderNumber) String() string {
	return n.value
}

// IsStandard reports whether the number follows the ORD-yyyy-nnnnnn format.
func (n OrderNumber) IsStandard() bool {
	return standardOrderNumber.MatchString(n.value)
}

func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
