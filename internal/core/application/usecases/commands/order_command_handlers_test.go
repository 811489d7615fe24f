package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlacedOrder(t *testing.T, retailerID, productID kernel.UUID, qty int, price float64) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), productID, qty, price)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), retailerID, []order.Item{item}, time.Now())
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	o := newPlacedOrder(t, retailer.ID(), kernel.NewUUID(), 2, 10.0)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), retailer.Email())
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, order.Cancelled, o.Status())
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyShippedIsNoOp(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	o := newPlacedOrder(t, retailer.ID(), kernel.NewUUID(), 2, 10.0)
	require.NoError(t, o.AdvanceTo(order.Shipped))
	cmd, err := commands.NewCancelOrderCommand(o.ID(), retailer.Email())
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, order.Shipped, o.Status())
	orders.AssertNotCalled(t, "Update", ctx, o)
}

func TestCancelOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	o := newPlacedOrder(t, kernel.NewUUID(), kernel.NewUUID(), 2, 10.0)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), retailer.Email())
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, changed)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderStatusCommandHandler_Handle_PlacedToShipped(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 2, 10.0)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), wholesaler.Email(), order.Shipped)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, wholesaler.Email()).Return(wholesaler, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	products.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	users.On("Get", ctx, retailer.ID()).Return(retailer, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &fakeDispatcher{}
	h := commands.NewAdvanceOrderStatusCommandHandler(factory, dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Shipped, o.Status())
	require.Len(t, dispatcher.notifies, 1)
	assert.True(t, dispatcher.notifies[0].recipientID.IsEqual(retailer.ID()))
	require.Len(t, dispatcher.emails, 1)
	assert.Equal(t, retailer.Email(), dispatcher.emails[0].to)
	assert.Contains(t, dispatcher.emails[0].subject, "Status Update")
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 2, 10.0)
	// Placed straight to Delivered skips the shipped step.
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), wholesaler.Email(), order.Delivered)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, wholesaler.Email()).Return(wholesaler, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	products.On("Get", ctx, prod.ID()).Return(prod, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &fakeDispatcher{}
	h := commands.NewAdvanceOrderStatusCommandHandler(factory, dispatcher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Placed, o.Status())
	assert.Empty(t, dispatcher.notifies)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceOrderStatusCommandHandler_Handle_NotProductOwner(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	otherWholesalerProduct := newTestProduct(t, kernel.NewUUID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), otherWholesalerProduct.ID(), 2, 10.0)
	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), wholesaler.Email(), order.Shipped)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, wholesaler.Email()).Return(wholesaler, nil).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	products.On("Get", ctx, otherWholesalerProduct.ID()).Return(otherWholesalerProduct, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, &fakeDispatcher{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Placed, o.Status())
}
