// Package ports defines the persistence and side-effect contracts the core
// depends on. Adapters implement them; command handlers consume them through
// unit-of-work boundaries.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/returns"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository resolves accounts. Lookups by email serve the identity
// layer, which hands the core an authenticated email string.
type UserRepository interface {
	// Get retrieves a user by identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an active user by its unique email,
	// case-insensitively.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier, whether active or not.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically subtracts qty from the product's quantity,
	// failing with an InsufficientStockError when fewer than qty units are
	// available. It returns the remaining quantity. This is the only write
	// path for stock during checkout, so concurrent checkouts can never
	// drive a quantity negative.
	DecrementStock(ctx context.Context, id kernel.UUID, qty int) (int, error)

	// GetBelowThreshold retrieves the wholesaler's active products whose
	// quantity is strictly below their minimum-stock threshold.
	GetBelowThreshold(ctx context.Context, wholesalerID kernel.UUID) ([]*product.Product, error)
}

// CartRepository persists per-retailer cart lines.
type CartRepository interface {
	Add(ctx context.Context, aggregate *cart.Line) error
	Get(ctx context.Context, id kernel.UUID) (*cart.Line, error)

	// GetByRetailer retrieves all of a retailer's lines, oldest first.
	GetByRetailer(ctx context.Context, retailerID kernel.UUID) ([]*cart.Line, error)

	// Delete removes one line.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByRetailer removes every line of the retailer. Used by clear
	// and by checkout's final commit.
	DeleteByRetailer(ctx context.Context, retailerID kernel.UUID) error
}

// OrderRepository persists order aggregates with their items.
type OrderRepository interface {
	// Add persists a new order and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order. Items are
	// immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemID retrieves the order containing the given order item.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*order.Order, error)
}

// ReturnRepository persists return requests.
type ReturnRepository interface {
	Add(ctx context.Context, aggregate *returns.Request) error
	Update(ctx context.Context, aggregate *returns.Request) error
	Get(ctx context.Context, id kernel.UUID) (*returns.Request, error)
}

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetByRecipient retrieves a user's notifications, newest first.
	GetByRecipient(ctx context.Context, recipientID kernel.UUID) ([]*notification.Notification, error)
}
