package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSweepUoW returns a unit of work whose transaction is begun and rolled back
// once, with Commit allowed when commit is true.
func newSweepUoW(ctx any, repo *MockOrderRepository, commit bool) *MockOrderUoW {
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}

func TestNewBulkConfirmOrdersCommand(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewBulkConfirmOrdersCommand([]kernel.UUID{a, b, a})
	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{a, b}, cmd.OrderIDs())

	_, err = commands.NewBulkConfirmOrdersCommand(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewBulkConfirmOrdersCommand([]kernel.UUID{a, {}})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, commands.BulkConfirmOrdersCommand{}.Validate(),
		commands.ErrBulkConfirmOrdersCommandIsNotConstructed)
}

func TestBulkConfirmOrdersCommandHandler_Handle_PartialSuccess(t *testing.T) {
	ctx := t.Context()
	product := newProduct(t, "P1", "10.00")
	pendingA := newPendingOrder(t, kernel.NewUUID(), product, 1)
	confirmedB := newConfirmedOrder(t, kernel.NewUUID(), product)
	missingC := kernel.NewUUID()
	ids := []kernel.UUID{pendingA.ID(), confirmedB.ID(), missingC}
	cmd, err := commands.NewBulkConfirmOrdersCommand(ids)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("ListByIDs", ctx, ids).Return([]*order.Order{confirmedB, pendingA}, nil).Once()
	repo.On("UpdateStatus", ctx, pendingA.ID(), order.Pending, order.Confirmed, (*order.ShippingAddress)(nil)).
		Return(true, nil).Once()

	readUoW := newSweepUoW(ctx, repo, false)
	writeUoW := newSweepUoW(ctx, repo, true)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(writeUoW).Once()

	h := commands.NewBulkConfirmOrdersCommandHandler(factory, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertExpectations(t)
	readUoW.AssertExpectations(t)
	writeUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBulkConfirmOrdersCommandHandler_Handle_ConfirmedConcurrently(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "P1", "10.00"), 1)
	cmd, err := commands.NewBulkConfirmOrdersCommand([]kernel.UUID{pending.ID()})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("ListByIDs", ctx, []kernel.UUID{pending.ID()}).Return([]*order.Order{pending}, nil).Once()
	repo.On("UpdateStatus", ctx, pending.ID(), order.Pending, order.Confirmed, mock.Anything).
		Return(false, nil).Once()

	readUoW := newSweepUoW(ctx, repo, false)
	writeUoW := newSweepUoW(ctx, repo, false)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(writeUoW).Once()

	h := commands.NewBulkConfirmOrdersCommandHandler(factory, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	writeUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBulkConfirmOrdersCommandHandler_Handle_UnreadableStoreAborts(t *testing.T) {
	ctx := t.Context()
	ids := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewBulkConfirmOrdersCommand(ids)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("ListByIDs", ctx, ids).Return(nil, errs.NewPersistenceFailureError("list orders")).Once()

	readUoW := newSweepUoW(ctx, repo, false)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(readUoW).Once()

	h := commands.NewBulkConfirmOrdersCommandHandler(factory, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	assert.Equal(t, 0, count)
	factory.AssertExpectations(t)
}

func TestBulkConfirmOrdersCommandHandler_Handle_WriteFailureStopsSweep(t *testing.T) {
	ctx := t.Context()
	product := newProduct(t, "P1", "10.00")
	first := newPendingOrder(t, kernel.NewUUID(), product, 1)
	second := newPendingOrder(t, kernel.NewUUID(), product, 1)
	third := newPendingOrder(t, kernel.NewUUID(), product, 1)
	ids := []kernel.UUID{first.ID(), second.ID(), third.ID()}
	cmd, err := commands.NewBulkConfirmOrdersCommand(ids)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("ListByIDs", ctx, ids).Return([]*order.Order{first, second, third}, nil).Once()
	repo.On("UpdateStatus", ctx, first.ID(), order.Pending, order.Confirmed, mock.Anything).
		Return(true, nil).Once()
	repo.On("UpdateStatus", ctx, second.ID(), order.Pending, order.Confirmed, mock.Anything).
		Return(false, errs.NewPersistenceFailureError("update order status")).Once()

	readUoW := newSweepUoW(ctx, repo, false)
	firstUoW := newSweepUoW(ctx, repo, true)
	secondUoW := newSweepUoW(ctx, repo, false)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewBulkConfirmOrdersCommandHandler(factory, discardLogger())
	count, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistenceFailure)
	assert.Equal(t, 1, count)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, third.ID(), mock.Anything, mock.Anything, mock.Anything)
	firstUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBulkConfirmOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewBulkConfirmOrdersCommandHandler(factory, discardLogger())

	count, err := h.Handle(t.Context(), commands.BulkConfirmOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrBulkConfirmOrdersCommandIsNotConstructed)
	assert.Zero(t, count)
	factory.AssertNotCalled(t, "Create")
}
