package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoItems is returned when an order would be created without items.
	ErrNoItems = errors.New("order must contain at least one item")
)

// Item is one line of an order. Quantity comes from the cart line and
// PriceAtPurchase is frozen from the product's price at checkout; both are
// immutable afterward.
type Item struct {
	id              kernel.UUID
	productID       kernel.UUID
	quantity        int
	priceAtPurchase float64
}

// NewItem creates an order item with a frozen purchase price.
func NewItem(id, productID kernel.UUID, quantity int, priceAtPurchase float64) (Item, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if priceAtPurchase < 0 {
		return Item{}, errs.NewValueIsInvalidError("priceAtPurchase")
	}
	return Item{
		id:              id,
		productID:       productID,
		quantity:        quantity,
		priceAtPurchase: priceAtPurchase,
	}, nil
}

func (i Item) ID() kernel.UUID          { return i.id }
func (i Item) ProductID() kernel.UUID   { return i.productID }
func (i Item) Quantity() int            { return i.quantity }
func (i Item) PriceAtPurchase() float64 { return i.priceAtPurchase }

// Subtotal is quantity times the frozen purchase price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.priceAtPurchase
}

// Order is the aggregate root created by checkout. It is immutable except
// for its status, which only moves forward along the legal transition graph.
//
// Invariants:
//   - total amount always equals the sum of item subtotals
//   - at least one item
//   - created only through NewOrder / RestoreOrder
type Order struct {
	id          kernel.UUID
	retailerID  kernel.UUID
	orderDate   time.Time
	totalAmount float64
	status      Status
	active      bool
	items       []Item

	isConstructed bool
}

// NewOrder creates a placed order from checkout items. The total amount is
// recomputed from the items here and never accepted from the caller.
func NewOrder(id, retailerID kernel.UUID, items []Item, orderDate time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), retailerID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	o := &Order{
		id:            id,
		retailerID:    retailerID,
		orderDate:     orderDate,
		status:        Placed,
		active:        true,
		items:         items,
		isConstructed: true,
	}
	o.totalAmount = o.computeTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// discarded and recomputed from the items, so a tampered row can never
// violate the total-amount invariant.
func RestoreOrder(
	id, retailerID kernel.UUID,
	items []Item,
	orderDate time.Time,
	status Status,
	active bool,
) (*Order, error) {
	if err := errors.Join(id.Validate(), retailerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	o := &Order{
		id:            id,
		retailerID:    retailerID,
		orderDate:     orderDate,
		status:        status,
		active:        active,
		items:         items,
		isConstructed: true,
	}
	o.totalAmount = o.computeTotal()
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) RetailerID() kernel.UUID { return o.retailerID }
func (o *Order) OrderDate() time.Time    { return o.orderDate }
func (o *Order) TotalAmount() float64    { return o.totalAmount }
func (o *Order) Status() Status          { return o.status }
func (o *Order) IsActive() bool          { return o.active }

// Items returns a copy of the order's items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemByID finds an order item by its identifier.
func (o *Order) ItemByID(itemID kernel.UUID) (Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return Item{}, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Cancel moves a Placed order to Cancelled and reports whether anything
// changed. Calling it on any other status is a no-op returning false, which
// makes cancellation idempotent. Cancellation never restocks inventory.
func (o *Order) Cancel() bool {
	if o.status != Placed {
		return false
	}
	o.status = Cancelled
	return true
}

// AdvanceTo moves the order forward along Placed->Shipped->Delivered.
// Any other request fails with an InvalidTransitionError and leaves the
// order unchanged.
func (o *Order) AdvanceTo(to Status) error {
	next, err := o.status.Advance(to)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) computeTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}
