package coupon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

const maxCouponNameLength = 100

var (
	// ErrCouponIsNotConstructed is returned when a Coupon was not created via NewCoupon or RestoreCoupon.
	ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

	codePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{2,31}$`)
)

// Coupon is a discount policy customers redeem by code.
//
// Invariants:
//   - code is 3..32 upper-case letters, digits, '-' or '_'
//   - validFrom is before validUntil
//   - usageCount never exceeds usageLimit when a limit is set
type Coupon struct {
	id         kernel.UUID
	code       string
	name       string
	discount   Discount
	condition  Condition
	validFrom  time.Time
	validUntil time.Time
	usageLimit *int
	usageCount int

	persistedUsageCount int
	isConstructed       bool
}

// NewCoupon creates an unused coupon. usageLimit nil means unlimited.
// The code is normalised to upper case.
//
// Example:
//
//	d, _ := coupon.NewPercentageDiscount(20)
//	c, err := coupon.NewCoupon(kernel.NewUUID(), "spring20", "Spring sale", d,
//	    coupon.NoCondition(), from, until, nil)
func NewCoupon(
	id kernel.UUID,
	code string,
	name string,
	discount Discount,
	condition Condition,
	validFrom time.Time,
	validUntil time.Time,
	usageLimit *int,
) (*Coupon, error) {
	c := &Coupon{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setName(name),
		c.setDiscount(discount),
		c.setValidity(validFrom, validUntil),
		c.setUsageLimit(usageLimit),
	); err != nil {
		return nil, err
	}
	c.condition = condition

	return c, nil
}

// RestoreCoupon rehydrates a persisted coupon including its usage count.
func RestoreCoupon(
	id kernel.UUID,
	code string,
	name string,
	discount Discount,
	condition Condition,
	validFrom time.Time,
	validUntil time.Time,
	usageLimit *int,
	usageCount int,
) (*Coupon, error) {
	c, err := NewCoupon(id, code, name, discount, condition, validFrom, validUntil, usageLimit)
	if err != nil {
		return nil, err
	}

	if usageCount < 0 || (usageLimit != nil && usageCount > *usageLimit) {
		maxCount := any("unlimited")
		if usageLimit != nil {
			maxCount = *usageLimit
		}
		return nil, errs.NewValueIsOutOfRangeError("coupon usage count", usageCount, 0, maxCount)
	}
	c.usageCount = usageCount
	c.persistedUsageCount = usageCount

	return c, nil
}

func (c *Coupon) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCouponIsNotConstructed
	}
	return nil
}

func (c *Coupon) ID() kernel.UUID {
	return c.id
}

func (c *Coupon) Code() string {
	return c.code
}

func (c *Coupon) Name() string {
	return c.name
}

func (c *Coupon) Discount() Discount {
	return c.discount
}

func (c *Coupon) Condition() Condition {
	return c.condition
}

func (c *Coupon) ValidFrom() time.Time {
	return c.validFrom
}

func (c *Coupon) ValidUntil() time.Time {
	return c.validUntil
}

// UsageLimit returns a copy of the limit, or nil when unlimited.
func (c *Coupon) UsageLimit() *int {
	if c.usageLimit == nil {
		return nil
	}
	limit := *c.usageLimit
	return &limit
}

func (c *Coupon) UsageCount() int {
	return c.usageCount
}

// PersistedUsageCount is the usage count the coupon was restored with.
// Adapters compare it with the stored value before writing.
func (c *Coupon) PersistedUsageCount() int {
	return c.persistedUsageCount
}

// IsWithinValidity reports whether now lies in [validFrom, validUntil].
func (c *Coupon) IsWithinValidity(now time.Time) bool {
	return !now.Before(c.validFrom) && !now.After(c.validUntil)
}

// HasRemainingUsage reports whether the coupon can be redeemed once more.
func (c *Coupon) HasRemainingUsage() bool {
	return c.usageLimit == nil || c.usageCount < *c.usageLimit
}

// CheckAvailability returns an InvalidCouponError when the coupon is outside
// its validity window or has been used up.
func (c *Coupon) CheckAvailability(now time.Time) error {
	switch {
	case now.Before(c.validFrom):
		return errs.NewInvalidCouponError(c.code, "coupon is not valid yet")
	case now.After(c.validUntil):
		return errs.NewInvalidCouponError(c.code, "coupon has expired")
	case !c.HasRemainingUsage():
		return errs.NewInvalidCouponError(c.code, "coupon usage limit reached")
	}
	return nil
}

// IncrementUsage records one redemption.
func (c *Coupon) IncrementUsage() error {
	if !c.HasRemainingUsage() {
		return errs.NewInvalidCouponError(c.code, "coupon usage limit reached")
	}
	c.usageCount++
	return nil
}

// NormalizeCode trims and upper-cases a user supplied coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coupon) setCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("coupon code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("coupon code", fmt.Errorf("%q is not a valid coupon code", code))
	}
	c.code = code
	return nil
}

func (c *Coupon) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("coupon name")
	}
	if n := utf8.RuneCountInString(name); n > maxCouponNameLength {
		return errs.NewValueIsOutOfRangeError("coupon name length", n, 1, maxCouponNameLength)
	}
	c.name = name
	return nil
}

func (c *Coupon) setDiscount(discount Discount) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	c.discount = discount
	return nil
}

func (c *Coupon) setValidity(from, until time.Time) error {
	if from.IsZero() || until.IsZero() {
		return errs.NewValueIsRequiredError("coupon validity period")
	}
	if !from.Before(until) {
		return errs.NewValueIsInvalidErrorWithCause("coupon validity period",
			fmt.Errorf("valid from %s must be before valid until %s", from.Format(time.RFC3339), until.Format(time.RFC3339)))
	}
	c.validFrom = from.UTC()
	c.validUntil = until.UTC()
	return nil
}

func (c *Coupon) setUsageLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < 1 {
		return errs.NewValueIsOutOfRangeError("coupon usage limit", *limit, 1, "unlimited")
	}
	l := *limit
	c.usageLimit = &l
	return nil
}
