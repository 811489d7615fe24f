// Package returns contains the post-delivery return-request aggregate.
// A request is created only by the retailer that owns the source order item
// and can never ask for more units than that item carried.
package returns

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

// Request is a retailer's return request against one order item.
type Request struct {
	id          kernel.UUID
	orderItemID kernel.UUID
	retailerID  kernel.UUID
	quantity    int
	reason      string
	status      Status
	requestDate time.Time
	updatedDate time.Time

	isConstructed bool
}

// NewRequest creates a return request in Requested status. purchasedQty is
// the quantity of the source order item; the return can never exceed it.
func NewRequest(
	id, orderItemID, retailerID kernel.UUID,
	quantity, purchasedQty int,
	reason string,
	now time.Time,
) (*Request, error) {
	if err := errors.Join(id.Validate(), orderItemID.Validate(), retailerID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > purchasedQty {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("cannot return %d of %d purchased", quantity, purchasedQty))
	}

	return &Request{
		id:            id,
		orderItemID:   orderItemID,
		retailerID:    retailerID,
		quantity:      quantity,
		reason:        reason,
		status:        StatusRequested,
		requestDate:   now,
		updatedDate:   now,
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a return request from persistence.
func RestoreRequest(
	id, orderItemID, retailerID kernel.UUID,
	quantity int,
	reason string,
	status Status,
	requestDate, updatedDate time.Time,
) (*Request, error) {
	if err := errors.Join(
		id.Validate(), orderItemID.Validate(), retailerID.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	return &Request{
		id:            id,
		orderItemID:   orderItemID,
		retailerID:    retailerID,
		quantity:      quantity,
		reason:        reason,
		status:        status,
		requestDate:   requestDate,
		updatedDate:   updatedDate,
		isConstructed: true,
	}, nil
}

// Validate ensures the Request was built through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.UUID          { return r.id }
func (r *Request) OrderItemID() kernel.UUID { return r.orderItemID }
func (r *Request) RetailerID() kernel.UUID  { return r.retailerID }
func (r *Request) Quantity() int            { return r.quantity }
func (r *Request) Reason() string           { return r.reason }
func (r *Request) Status() Status           { return r.status }
func (r *Request) RequestDate() time.Time   { return r.requestDate }
func (r *Request) UpdatedDate() time.Time   { return r.updatedDate }

// BelongsTo reports whether the request was filed by the given retailer.
func (r *Request) BelongsTo(retailerID kernel.UUID) bool {
	return r.retailerID.IsEqual(retailerID)
}

// SetStatus updates the status and the last-updated timestamp. Only the
// status value is validated; the transition graph is a product decision
// that the observed behavior does not enforce.
func (r *Request) SetStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	r.updatedDate = now
	return nil
}
