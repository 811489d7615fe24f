// Package notify implements the fire-and-forget dispatcher behind the
// core's notification port. Work is handed to a single background worker
// over a buffered channel: callers return immediately, delivery failures
// are logged and never surface, and nothing here can fail a committed
// business operation.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
)

const (
	queueSize   = 256
	taskTimeout = 30 * time.Second
)

type task func(ctx context.Context)

// AsyncDispatcher implements ports.Dispatcher. In-app notifications are
// persisted in their own short transaction, outside whichever transaction
// triggered them; emails go through the configured mailer.
type AsyncDispatcher struct {
	uowFactory ports.UnitOfWorkFactory
	mailer     ports.Mailer
	logger     *slog.Logger

	tasks chan task
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewAsyncDispatcher creates the dispatcher and starts its worker.
func NewAsyncDispatcher(
	uowFactory ports.UnitOfWorkFactory,
	mailer ports.Mailer,
	logger *slog.Logger,
) *AsyncDispatcher {
	d := &AsyncDispatcher{
		uowFactory: uowFactory,
		mailer:     mailer,
		logger:     logger.With("component", "dispatcher"),
		tasks:      make(chan task, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *AsyncDispatcher) run() {
	defer d.wg.Done()
	for t := range d.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		t(ctx)
		cancel()
	}
}

// Close stops accepting work and waits for the queue to drain.
func (d *AsyncDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
}

// enqueue hands a task to the worker. A full queue or a closed dispatcher
// drops the task with a log line; callers never block or fail.
func (d *AsyncDispatcher) enqueue(name string, t task) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("dispatch dropped, dispatcher closed", "task", name)
		return
	}

	select {
	case d.tasks <- t:
	default:
		d.logger.Warn("dispatch dropped, queue full", "task", name)
	}
}

// Notify records an in-app notification for the recipient.
func (d *AsyncDispatcher) Notify(_ context.Context, recipientID kernel.UUID, header, body string) {
	d.enqueue("notify", func(ctx context.Context) {
		n, err := notification.NewNotification(kernel.NewUUID(), recipientID, body, time.Now())
		if err != nil {
			d.logger.ErrorContext(ctx, "notification rejected",
				"header", header, "recipient_id", recipientID.String(), "error", err)
			return
		}

		if err = d.persist(ctx, n); err != nil {
			d.logger.ErrorContext(ctx, "notification persist failed",
				"header", header, "recipient_id", recipientID.String(), "error", err)
		}
	})
}

func (d *AsyncDispatcher) persist(ctx context.Context, n *notification.Notification) error {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// SendEmail sends an HTML email.
func (d *AsyncDispatcher) SendEmail(_ context.Context, to, subject, htmlBody string) {
	d.enqueue("email", func(ctx context.Context) {
		if err := d.mailer.SendEmail(to, subject, htmlBody); err != nil {
			d.logger.ErrorContext(ctx, "email send failed", "to", to, "subject", subject, "error", err)
		}
	})
}

// SendEmailWithAttachment sends an HTML email with one attachment.
func (d *AsyncDispatcher) SendEmailWithAttachment(
	_ context.Context, to, subject, htmlBody string, attachment []byte, filename string,
) {
	d.enqueue("email", func(ctx context.Context) {
		if err := d.mailer.SendEmailWithAttachment(to, subject, htmlBody, attachment, filename); err != nil {
			d.logger.ErrorContext(ctx, "email send failed", "to", to, "subject", subject, "error", err)
		}
	})
}
