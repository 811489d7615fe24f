package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/returns"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReturnRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 5, 10.0)
	itemID := o.Items()[0].ID()
	cmd, err := commands.NewCreateReturnRequestCommand(itemID, retailer.Email(), 2, "damaged packaging")
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	rets := new(MockReturnRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()
	rets.On("Add", ctx, mock.AnythingOfType("*returns.Request")).Return(nil).Once()
	products.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	users.On("Get", ctx, wholesaler.ID()).Return(wholesaler, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)
	uow.On("ReturnRepository").Return(rets)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &fakeDispatcher{}
	h := commands.NewCreateReturnRequestCommandHandler(factory, dispatcher)
	request, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, request)

	assert.Equal(t, returns.StatusRequested, request.Status())
	assert.Equal(t, 2, request.Quantity())
	assert.True(t, request.OrderItemID().IsEqual(itemID))

	require.Len(t, dispatcher.notifies, 1)
	assert.True(t, dispatcher.notifies[0].recipientID.IsEqual(wholesaler.ID()))
	require.Len(t, dispatcher.emails, 1)
	assert.Equal(t, wholesaler.Email(), dispatcher.emails[0].to)

	rets.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateReturnRequestCommandHandler_Handle_QuantityExceedsPurchase(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 2, 10.0)
	itemID := o.Items()[0].ID()
	cmd, err := commands.NewCreateReturnRequestCommand(itemID, retailer.Email(), 3, "too many")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReturnRequestCommandHandler(factory, &fakeDispatcher{})
	request, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, request)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateReturnRequestCommandHandler_Handle_NotOrderOwner(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, kernel.NewUUID(), prod.ID(), 2, 10.0)
	itemID := o.Items()[0].ID()
	cmd, err := commands.NewCreateReturnRequestCommand(itemID, retailer.Email(), 1, "not mine")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)
	users.On("GetByEmail", ctx, retailer.Email()).Return(retailer, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("OrderRepository").Return(orders)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReturnRequestCommandHandler(factory, &fakeDispatcher{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func newRequestedReturn(t *testing.T, itemID, retailerID kernel.UUID, qty int) *returns.Request {
	t.Helper()
	r, err := returns.NewRequest(kernel.NewUUID(), itemID, retailerID, qty, qty, "damaged", time.Now())
	require.NoError(t, err)
	return r
}

func TestUpdateReturnStatusCommandHandler_Handle_WholesalerApproves(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	prod := newTestProduct(t, wholesaler.ID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 3, 10.0)
	itemID := o.Items()[0].ID()
	request := newRequestedReturn(t, itemID, retailer.ID(), 2)
	cmd, err := commands.NewUpdateReturnStatusCommand(request.ID(), wholesaler.Email(), returns.StatusApproved)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	rets := new(MockReturnRepository)
	rets.On("Get", ctx, request.ID()).Return(request, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()
	products.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	users.On("GetByEmail", ctx, wholesaler.Email()).Return(wholesaler, nil).Once()
	rets.On("Update", ctx, request).Return(nil).Once()
	users.On("Get", ctx, retailer.ID()).Return(retailer, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)
	uow.On("ReturnRepository").Return(rets)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := &fakeDispatcher{}
	h := commands.NewUpdateReturnStatusCommandHandler(factory, dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, returns.StatusApproved, request.Status())
	require.Len(t, dispatcher.notifies, 1)
	assert.True(t, dispatcher.notifies[0].recipientID.IsEqual(retailer.ID()))
	require.Len(t, dispatcher.emails, 1)
	assert.Equal(t, retailer.Email(), dispatcher.emails[0].to)
}

func TestUpdateReturnStatusCommandHandler_Handle_WholesalerDoesNotOwnProduct(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	wholesaler := newTestWholesaler(t)
	foreignProduct := newTestProduct(t, kernel.NewUUID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), foreignProduct.ID(), 3, 10.0)
	itemID := o.Items()[0].ID()
	request := newRequestedReturn(t, itemID, retailer.ID(), 2)
	cmd, err := commands.NewUpdateReturnStatusCommand(request.ID(), wholesaler.Email(), returns.StatusRejected)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	rets := new(MockReturnRepository)
	rets.On("Get", ctx, request.ID()).Return(request, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()
	products.On("Get", ctx, foreignProduct.ID()).Return(foreignProduct, nil).Once()
	users.On("GetByEmail", ctx, wholesaler.Email()).Return(wholesaler, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)
	uow.On("ReturnRepository").Return(rets)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateReturnStatusCommandHandler(factory, &fakeDispatcher{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, returns.StatusRequested, request.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateReturnStatusCommandHandler_Handle_AdminSkipsOwnershipCheck(t *testing.T) {
	ctx := context.Background()
	retailer := newTestRetailer(t)
	prod := newTestProduct(t, kernel.NewUUID(), 10.0, 50, 5)
	o := newPlacedOrder(t, retailer.ID(), prod.ID(), 3, 10.0)
	itemID := o.Items()[0].ID()
	request := newRequestedReturn(t, itemID, retailer.ID(), 1)
	cmd, err := commands.NewUpdateReturnStatusCommand(request.ID(), "", returns.StatusProcessed)
	require.NoError(t, err)

	users := new(MockUserRepository)
	products := new(MockProductRepository)
	orders := new(MockOrderRepository)
	rets := new(MockReturnRepository)
	rets.On("Get", ctx, request.ID()).Return(request, nil).Once()
	orders.On("GetByItemID", ctx, itemID).Return(o, nil).Once()
	products.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	rets.On("Update", ctx, request).Return(nil).Once()
	users.On("Get", ctx, retailer.ID()).Return(retailer, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProductRepository").Return(products)
	uow.On("OrderRepository").Return(orders)
	uow.On("ReturnRepository").Return(rets)

	factory := new(MockReturnUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateReturnStatusCommandHandler(factory, &fakeDispatcher{})
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, returns.StatusProcessed, request.Status())
	users.AssertNotCalled(t, "GetByEmail", ctx, mock.Anything)
}
