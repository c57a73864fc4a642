package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/internal/application/ports"
	"github.com/jhoicas/securepass-api/internal/infrastructure/notify"
)

type flakyMailer struct {
	mu       sync.Mutex
	failures int
	calls    int
	sent     []notify.Message
}

func (m *flakyMailer) Send(_ context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failures {
		return errors.New("smtp caído")
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubGuides struct{ audience string }

func (g *stubGuides) RenderGuide(audience, _ string) ([]byte, error) {
	g.audience = audience
	return []byte("%PDF-1.4"), nil
}

func noWait(int) time.Duration { return 0 }

func runPool(t *testing.T, mailer notify.Mailer, maxAttempts int, notices ...ports.RegistrationNotice) {
	t.Helper()
	q := notify.NewMemoryQueue(10)
	n := notify.NewNotifier(q)
	for _, notice := range notices {
		require.NoError(t, n.NotifyRegistration(context.Background(), notice))
	}
	require.NoError(t, q.Close())

	pool := notify.NewPool(q, notify.NewComposer(nil), mailer, 2, maxAttempts, zerolog.Nop(), notify.WithBackoff(noWait))
	done := make(chan struct{})
	go func() {
		_ = pool.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("el pool no terminó")
	}
}

// ─── Pool ────────────────────────────────────────────────────────────────────

func TestPool_RetriesUntilSuccess(t *testing.T) {
	m := &flakyMailer{failures: 2}
	runPool(t, m, 3, ports.RegistrationNotice{Email: "ana@acme.co", FirstName: "ana", Audience: ports.AudienceUser})

	assert.Equal(t, 3, m.calls)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "ana@acme.co", m.sent[0].To)
}

func TestPool_GivesUpAfterMaxAttempts(t *testing.T) {
	m := &flakyMailer{failures: 100}
	runPool(t, m, 3, ports.RegistrationNotice{Email: "ana@acme.co"})

	assert.Equal(t, 3, m.calls)
	assert.Empty(t, m.sent)
}

func TestPool_DeliversEveryJob(t *testing.T) {
	m := &flakyMailer{}
	runPool(t, m, 1,
		ports.RegistrationNotice{Email: "a@acme.co"},
		ports.RegistrationNotice{Email: "b@acme.co"},
		ports.RegistrationNotice{Email: "c@acme.co"},
	)
	assert.Len(t, m.sent, 3)
}

func TestExponentialBackoff(t *testing.T) {
	assert.Equal(t, time.Duration(0), notify.ExponentialBackoff(1))
	assert.Equal(t, 500*time.Millisecond, notify.ExponentialBackoff(2))
	assert.Equal(t, time.Second, notify.ExponentialBackoff(3))
	assert.Equal(t, 30*time.Second, notify.ExponentialBackoff(20))
}

// ─── Queue ───────────────────────────────────────────────────────────────────

func TestMemoryQueue_FullAndClosed(t *testing.T) {
	q := notify.NewMemoryQueue(1)
	ctx := context.Background()
	require.NoError(t, q.Enqueue(ctx, notify.EmailJob{Kind: notify.KindRegistration}))
	assert.ErrorIs(t, q.Enqueue(ctx, notify.EmailJob{Kind: notify.KindRegistration}), notify.ErrQueueFull)

	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
	assert.ErrorIs(t, q.Enqueue(ctx, notify.EmailJob{}), notify.ErrQueueClosed)
}

// ─── Composer ────────────────────────────────────────────────────────────────

func TestComposer_RegistrationAttachesGuide(t *testing.T) {
	guides := &stubGuides{}
	c := notify.NewComposer(guides)

	msg, err := c.Compose(notify.EmailJob{Kind: notify.KindRegistration, Registration: &ports.RegistrationNotice{
		Email: "ana@acme.co", FirstName: "ANA", LastName: "ruiz", Password: "Secreto#1", Audience: ports.AudienceAdmin,
	}})
	require.NoError(t, err)

	assert.Equal(t, "Registro exitoso", msg.Subject)
	assert.Contains(t, msg.HTML, "Ana Ruiz")
	assert.Contains(t, msg.HTML, "Secreto#1")
	assert.Equal(t, ports.AudienceAdmin, guides.audience)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "Admin-Guide-SecurePass.pdf", msg.Attachments[0].Filename)
}

func TestComposer_PermissionEscapesMessage(t *testing.T) {
	c := notify.NewComposer(nil)
	msg, err := c.Compose(notify.EmailJob{Kind: notify.KindPermissionGranted, Permission: &ports.PermissionNotice{
		Email: "ana@acme.co", DoorCode: "D-101", RoomName: "Lab", Location: "Sede Norte",
		Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), InTime: "08:00", OutTime: "12:00",
		Message: "<script>x</script>",
	}})
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "D-101")
	assert.Contains(t, msg.HTML, "09/03/2026")
	assert.Contains(t, msg.HTML, "08:00 - 12:00")
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Empty(t, msg.Attachments)
}

func TestComposer_UnknownKind(t *testing.T) {
	_, err := notify.NewComposer(nil).Compose(notify.EmailJob{Kind: "sms"})
	assert.Error(t, err)
	_, err = notify.NewComposer(nil).Compose(notify.EmailJob{Kind: notify.KindRegistration})
	assert.Error(t, err)
}
