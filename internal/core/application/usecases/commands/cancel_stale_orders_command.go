package commands

import (
	"errors"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// DefaultStaleOrderBatchSize bounds how many orders one run cancels.
const DefaultStaleOrderBatchSize = 100

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand cancels Pending orders created before a cutoff.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	createdBefore time.Time
	batchSize     int

	guard guard.ConstructorGuard
}

func NewCancelStaleOrdersCommand(createdBefore time.Time, batchSize int) (CancelStaleOrdersCommand, error) {
	if createdBefore.IsZero() {
		return CancelStaleOrdersCommand{}, errs.NewValueIsRequiredError("created before")
	}
	if batchSize < 1 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unlimited")
	}

	return CancelStaleOrdersCommand{
		createdBefore: createdBefore.UTC(),
		batchSize:     batchSize,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

func (c CancelStaleOrdersCommand) CreatedBefore() time.Time {
	return c.createdBefore
}

func (c CancelStaleOrdersCommand) BatchSize() int {
	return c.batchSize
}
