package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every checkout,
// status update or return update runs inside exactly one unit of work:
// either all of its mutations commit together or none do. Client code must
// explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repository accessors bound to the current transaction.
	UserRepository() UserRepository
	ProductRepository() ProductRepository
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	ReturnRepository() ReturnRepository
	NotificationRepository() NotificationRepository
}
