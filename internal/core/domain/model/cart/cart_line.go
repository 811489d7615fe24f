// Package cart contains the per-retailer cart lines that checkout converts
// into an order. A line always references a live catalog product; pricing is
// not frozen until checkout.
package cart

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

// Line is one cart entry. Adding the same product twice appends a second
// line rather than merging quantities; checkout handles both the same way.
type Line struct {
	id          kernel.UUID
	retailerID  kernel.UUID
	productID   kernel.UUID
	quantity    int
	createdDate time.Time

	isConstructed bool
}

// NewLine creates a cart line for a retailer.
func NewLine(id, retailerID, productID kernel.UUID, quantity int, now time.Time) (*Line, error) {
	if err := errors.Join(id.Validate(), retailerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Line{
		id:            id,
		retailerID:    retailerID,
		productID:     productID,
		quantity:      quantity,
		createdDate:   now,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a cart line from persistence.
func RestoreLine(id, retailerID, productID kernel.UUID, quantity int, createdDate time.Time) (*Line, error) {
	return NewLine(id, retailerID, productID, quantity, createdDate)
}

// Validate ensures the Line was built through a constructor.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID         { return l.id }
func (l *Line) RetailerID() kernel.UUID { return l.retailerID }
func (l *Line) ProductID() kernel.UUID  { return l.productID }
func (l *Line) Quantity() int           { return l.quantity }
func (l *Line) CreatedDate() time.Time  { return l.createdDate }

// BelongsTo reports whether the line is owned by the given retailer.
func (l *Line) BelongsTo(retailerID kernel.UUID) bool {
	return l.retailerID.IsEqual(retailerID)
}
