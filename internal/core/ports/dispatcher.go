package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
)

// Dispatcher delivers in-app notifications and emails triggered by the
// core's mutations. Dispatch is fire-and-forget: calls return immediately,
// carry no ordering guarantee relative to the triggering operation's
// response, and failures are logged by the implementation, never surfaced.
// Handlers call it only after their transaction committed.
type Dispatcher interface {
	// Notify records an in-app notification for the recipient.
	Notify(ctx context.Context, recipientID kernel.UUID, header, body string)

	// SendEmail sends an HTML email.
	SendEmail(ctx context.Context, to, subject, htmlBody string)

	// SendEmailWithAttachment sends an HTML email with one attachment,
	// used for checkout invoices.
	SendEmailWithAttachment(ctx context.Context, to, subject, htmlBody string, attachment []byte, filename string)
}

// Mailer is the transport behind the dispatcher's email delivery.
type Mailer interface {
	SendEmail(to, subject, htmlBody string) error
	SendEmailWithAttachment(to, subject, htmlBody string, attachment []byte, filename string) error
}

// InvoiceRenderer produces the invoice document attached to the checkout
// confirmation email. Consumed only by the checkout handler.
type InvoiceRenderer interface {
	Render(o *order.Order, retailer *user.User, products map[kernel.UUID]*product.Product) ([]byte, error)
}
