package commands

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/coupon"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrRedeemCouponCommandIsNotConstructed = errors.New(
	"RedeemCouponCommand must be created via NewRedeemCouponCommand constructor",
)

// RedeemCouponCommand applies a coupon to a set of lines and counts the
// redemption.
type RedeemCouponCommand struct { //nolint:recvcheck //using for validation
	code  string
	lines []services.LineRequest

	guard guard.ConstructorGuard
}

func NewRedeemCouponCommand(code string, lines []services.LineRequest) (RedeemCouponCommand, error) {
	cmd := RedeemCouponCommand{
		code:  coupon.NormalizeCode(code),
		guard: guard.NewConstructorGuard(),
	}

	var codeErr error
	if cmd.code == "" {
		codeErr = errs.NewValueIsRequiredError("coupon code")
	}

	merged, linesErr := services.MergeLines(lines)
	if err := errors.Join(codeErr, linesErr); err != nil {
		return RedeemCouponCommand{}, err
	}
	cmd.lines = merged

	return cmd, nil
}

func (c RedeemCouponCommand) Validate() error {
	return c.guard.Validate(ErrRedeemCouponCommandIsNotConstructed)
}

func (c RedeemCouponCommand) Code() string {
	return c.code
}

func (c RedeemCouponCommand) Lines() []services.LineRequest {
	return slices.Clone(c.lines)
}

func (c RedeemCouponCommand) skuIDs() []kernel.UUID {
	return skuIDs(c.lines)
}
