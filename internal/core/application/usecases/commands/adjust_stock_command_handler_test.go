package commands_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/inventory"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stockUoWFixture struct {
	uow      *MockUoW
	factory  *MockStockUoWFactory
	products *MockProductRepository
}

func newStockUoWFixture() *stockUoWFixture {
	f := &stockUoWFixture{
		uow:      new(MockUoW),
		factory:  new(MockStockUoWFactory),
		products: new(MockProductRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("ProductRepository").Return(f.products).Maybe()
	return f
}

func (f *stockUoWFixture) assertExpectations(t *testing.T) {
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.products.AssertExpectations(t)
}

func TestNewAdjustStockCommand(t *testing.T) {
	skuID := kernel.NewUUID()

	cmd, err := commands.NewAdjustStockCommand(skuID, inventory.Increase(3))
	require.NoError(t, err)
	assert.Equal(t, skuID, cmd.SKUID())
	assert.Equal(t, 3, cmd.Adjustment().Quantity())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewAdjustStockCommand(kernel.UUID{}, inventory.Decrease(0))
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrInvalidStock)

	var zero commands.AdjustStockCommand
	assert.Equal(t, commands.ErrAdjustStockCommandIsNotConstructed, zero.Validate())
}

func TestAdjustStockCommandHandler_Handle_Increase(t *testing.T) {
	ctx := t.Context()
	f := newStockUoWFixture()
	skuID := kernel.NewUUID()
	stock := newStock(t, 10, 4)
	cmd, err := commands.NewAdjustStockCommand(skuID, inventory.Increase(5))
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.products.On("GetStock", ctx, skuID).Return(stock, nil).Once(),
		f.products.On("SaveStock", ctx, skuID, stock).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	result, err := commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 15, result.Total())
	assert.Equal(t, 4, result.Reserved())
	assert.Equal(t, 11, result.Available())
	f.assertExpectations(t)
}

func TestAdjustStockCommandHandler_Handle_DecreaseBeyondAvailable(t *testing.T) {
	ctx := t.Context()
	f := newStockUoWFixture()
	skuID := kernel.NewUUID()
	stock := newStock(t, 10, 4)
	cmd, err := commands.NewAdjustStockCommand(skuID, inventory.Decrease(7))
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.products.On("GetStock", ctx, skuID).Return(stock, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 10, stock.Total())
	f.products.AssertNotCalled(t, "SaveStock", mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestAdjustStockCommandHandler_Handle_Errors(t *testing.T) {
	t.Run("unknown sku", func(t *testing.T) {
		ctx := t.Context()
		f := newStockUoWFixture()
		skuID := kernel.NewUUID()
		cmd, err := commands.NewAdjustStockCommand(skuID, inventory.Increase(1))
		require.NoError(t, err)

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.products.On("GetStock", ctx, skuID).Return(nil, errs.NewObjectNotFoundError("stock", skuID)).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.assertExpectations(t)
	})

	t.Run("lost race on save", func(t *testing.T) {
		ctx := t.Context()
		f := newStockUoWFixture()
		skuID := kernel.NewUUID()
		stock := newStock(t, 3, 0)
		cmd, err := commands.NewAdjustStockCommand(skuID, inventory.Decrease(1))
		require.NoError(t, err)

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.products.On("GetStock", ctx, skuID).Return(stock, nil).Once()
		f.products.On("SaveStock", ctx, skuID, stock).Return(errs.ErrConcurrencyConflict).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		_, err = commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
		f.assertExpectations(t)
	})

	t.Run("begin fails", func(t *testing.T) {
		ctx := t.Context()
		f := newStockUoWFixture()
		cmd, err := commands.NewAdjustStockCommand(kernel.NewUUID(), inventory.Increase(1))
		require.NoError(t, err)
		beginErr := errors.New("connection refused")

		f.uow.On("Begin", ctx).Return(beginErr).Once()

		_, err = commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(ctx, cmd)

		require.ErrorIs(t, err, beginErr)
		f.assertExpectations(t)
	})

	t.Run("command not constructed", func(t *testing.T) {
		f := newStockUoWFixture()

		_, err := commands.NewAdjustStockCommandHandler(f.factory, discardLogger).Handle(t.Context(), commands.AdjustStockCommand{})

		require.ErrorIs(t, err, commands.ErrAdjustStockCommandIsNotConstructed)
		f.factory.AssertNotCalled(t, "Create")
	})
}
