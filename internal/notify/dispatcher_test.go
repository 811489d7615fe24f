package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu        sync.Mutex
	sent      []string
	withFiles []string
	err       error
}

func (m *fakeMailer) SendEmail(to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *fakeMailer) SendEmailWithAttachment(to, _, _ string, _ []byte, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	m.withFiles = append(m.withFiles, filename)
	return nil
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	added []*notification.Notification
}

func (r *fakeNotificationRepo) Add(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, n)
	return nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, _ *notification.Notification) error {
	return nil
}

func (r *fakeNotificationRepo) Get(_ context.Context, _ kernel.UUID) (*notification.Notification, error) {
	return nil, errors.New("not implemented in fake")
}

func (r *fakeNotificationRepo) GetByRecipient(
	_ context.Context, _ kernel.UUID,
) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in fake")
}

type fakeUoW struct {
	notifications *fakeNotificationRepo
}

func (u *fakeUoW) Begin(_ context.Context) error    { return nil }
func (u *fakeUoW) Commit(_ context.Context) error   { return nil }
func (u *fakeUoW) Rollback(_ context.Context) error { return nil }

func (u *fakeUoW) UserRepository() ports.UserRepository                 { return nil }
func (u *fakeUoW) ProductRepository() ports.ProductRepository           { return nil }
func (u *fakeUoW) CartRepository() ports.CartRepository                 { return nil }
func (u *fakeUoW) OrderRepository() ports.OrderRepository               { return nil }
func (u *fakeUoW) ReturnRepository() ports.ReturnRepository             { return nil }
func (u *fakeUoW) NotificationRepository() ports.NotificationRepository { return u.notifications }

type fakeUoWFactory struct {
	notifications *fakeNotificationRepo
}

func (f *fakeUoWFactory) Create() ports.UnitOfWork {
	return &fakeUoW{notifications: f.notifications}
}

func newDispatcher(mailer *fakeMailer, repo *fakeNotificationRepo) *notify.AsyncDispatcher {
	return notify.NewAsyncDispatcher(
		&fakeUoWFactory{notifications: repo},
		mailer,
		slog.New(slog.DiscardHandler),
	)
}

func TestAsyncDispatcher_NotifyPersistsNotification(t *testing.T) {
	mailer := &fakeMailer{}
	repo := &fakeNotificationRepo{}
	d := newDispatcher(mailer, repo)

	recipient := kernel.NewUUID()
	d.Notify(context.Background(), recipient, "Low stock alert", "Stock low for product: Rice. Remaining: 2")
	d.Close()

	require.Len(t, repo.added, 1)
	assert.True(t, repo.added[0].RecipientID().IsEqual(recipient))
	assert.Equal(t, "Stock low for product: Rice. Remaining: 2", repo.added[0].Message())
	assert.False(t, repo.added[0].IsSeen())
	assert.WithinDuration(t, time.Now(), repo.added[0].Timestamp(), time.Minute)
}

func TestAsyncDispatcher_SendsEmails(t *testing.T) {
	mailer := &fakeMailer{}
	repo := &fakeNotificationRepo{}
	d := newDispatcher(mailer, repo)

	d.SendEmail(context.Background(), "shop@example.com", "Order Confirmation", "<p>thanks</p>")
	d.SendEmailWithAttachment(context.Background(), "shop@example.com", "Invoice", "<p>attached</p>",
		[]byte("%PDF"), "Invoice_1.pdf")
	d.Close()

	require.Len(t, mailer.sent, 2)
	require.Len(t, mailer.withFiles, 1)
	assert.Equal(t, "Invoice_1.pdf", mailer.withFiles[0])
}

func TestAsyncDispatcher_MailerFailureNeverSurfaces(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	repo := &fakeNotificationRepo{}
	d := newDispatcher(mailer, repo)

	// Must not panic or block the caller.
	d.SendEmail(context.Background(), "shop@example.com", "Order Confirmation", "<p>thanks</p>")
	d.Close()

	assert.Empty(t, mailer.sent)
}

func TestAsyncDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	mailer := &fakeMailer{}
	repo := &fakeNotificationRepo{}
	d := newDispatcher(mailer, repo)
	d.Close()

	d.SendEmail(context.Background(), "shop@example.com", "late", "<p>late</p>")
	d.Close()

	assert.Empty(t, mailer.sent)
}
