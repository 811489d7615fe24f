// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and post-commit side effects.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler names exactly the repositories it touches, so a
// command can never reach outside its declared aggregate set.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// CartUoW serves the cart commands: add, remove, clear.
	CartUoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW serves checkout, which spans cart, product stock and the
	// new order in one transaction.
	CheckoutUoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW serves order-status commands: cancel and advance.
	OrderUoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReturnUoW serves the return workflow commands.
	ReturnUoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		ReturnRepoFactory
	}

	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// NotificationUoW serves the seen-flag commands.
	NotificationUoW interface {
		TxManager
		UserRepoFactory
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
