package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	items := []commands.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 5}}

	cmd, err := commands.NewUpdateOrderCommand(orderID, items)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, items, cmd.Items())

	_, err = commands.NewUpdateOrderCommand(orderID, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderCommand(kernel.UUID{}, items)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	assert.ErrorIs(t, commands.UpdateOrderCommand{}.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	current := newPendingOrder(t, customerID, newProduct(t, "P1", "100.00"), 2)
	p3 := newProduct(t, "P3", "30.00")
	cmd, err := commands.NewUpdateOrderCommand(current.ID(), []commands.ItemRequest{{ProductID: p3.ID(), Quantity: 5}})
	require.NoError(t, err)

	replacement, err := order.NewLineItem(kernel.NewUUID(), p3, 5)
	require.NoError(t, err)
	updatedOrder, err := order.RestoreOrder(current.ID(), current.Number(), customerID, order.Pending,
		nil, []order.LineItem{replacement}, kernel.MustMoney("150.00"), current.CreatedAt())
	require.NoError(t, err)

	var replaced []order.LineItem
	products := new(MockProductCatalog)
	products.On("Resolve", ctx, p3.ID()).Return(p3, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("ReplaceItems", ctx, current.ID(), mock.AnythingOfType("[]order.LineItem")).
		Run(func(args mock.Arguments) { replaced = args.Get(2).([]order.LineItem) }).
		Return(updatedOrder, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("ProductCatalog").Return(products).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "P3", replaced[0].ProductNumber())
	assert.Equal(t, 5, replaced[0].Quantity())
	assert.Equal(t, "150.00", replaced[0].Subtotal().String())
	require.Len(t, updated.Items(), 1)
	assert.Equal(t, "150.00", updated.TotalAmount().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ConfirmedOrder(t *testing.T) {
	ctx := t.Context()
	current := newConfirmedOrder(t, kernel.NewUUID(), newProduct(t, "P1", "100.00"))
	cmd, err := commands.NewUpdateOrderCommand(current.ID(), []commands.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	repo.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(orderID, []commands.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderCommandHandler_Handle_UnknownProductKeepsOrder(t *testing.T) {
	ctx := t.Context()
	current := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "P1", "100.00"), 2)
	missing := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(current.ID(), []commands.ItemRequest{{ProductID: missing, Quantity: 1}})
	require.NoError(t, err)

	products := new(MockProductCatalog)
	products.On("Resolve", ctx, missing).Return(catalog.Product{}, errs.NewObjectNotFoundError("product", missing)).Once()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("ProductCatalog").Return(products).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidProduct)
	repo.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, "200.00", current.TotalAmount().String())
}

func TestUpdateOrderCommandHandler_Handle_LostRaceToConfirm(t *testing.T) {
	ctx := t.Context()
	current := newPendingOrder(t, kernel.NewUUID(), newProduct(t, "P1", "100.00"), 2)
	p3 := newProduct(t, "P3", "30.00")
	cmd, err := commands.NewUpdateOrderCommand(current.ID(), []commands.ItemRequest{{ProductID: p3.ID(), Quantity: 5}})
	require.NoError(t, err)

	products := new(MockProductCatalog)
	products.On("Resolve", ctx, p3.ID()).Return(p3, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, current.ID()).Return(current, nil).Once()
	repo.On("ReplaceItems", ctx, current.ID(), mock.Anything).Return(nil, order.ErrInvalidStateTransition).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("ProductCatalog").Return(products).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStateTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
