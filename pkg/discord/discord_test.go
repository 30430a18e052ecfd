package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	status int
	err    error
	posts  []WebhookPayload
}

func (f *fakeClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return nil, 0, errors.New("not used")
}

func (f *fakeClient) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	if p, ok := body.(WebhookPayload); ok {
		f.posts = append(f.posts, p)
	}
	return nil, f.status, f.err
}

type warnLogger struct {
	log.Logger
	warns []string
}

func (l *warnLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

func newTestDiscord(client *fakeClient, l log.Logger) *discordImpl {
	return &discordImpl{
		l:       l,
		webhook: &DiscordWebhook{ID: "123", Token: "tok"},
		config:  DefaultConfig(),
		client:  client,
	}
}

func TestNewRequiresWebhook(t *testing.T) {
	_, err := New(log.NewNopLogger(), &DiscordWebhook{ID: "123"})
	assert.Error(t, err)
}

func TestReportBug(t *testing.T) {
	client := &fakeClient{status: 204}
	d := newTestDiscord(client, &warnLogger{})

	require.NoError(t, d.ReportBug(context.Background(), "panic: boom"))

	require.Len(t, client.posts, 1)
	require.Len(t, client.posts[0].Embeds, 1)
	assert.Equal(t, "Bug report", client.posts[0].Embeds[0].Title)
	assert.Contains(t, client.posts[0].Embeds[0].Description, "panic: boom")
}

func TestReportBugFailureIsLogged(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		l := &warnLogger{}
		d := newTestDiscord(&fakeClient{err: errors.New("dial tcp: refused")}, l)

		err := d.ReportBug(context.Background(), "panic: boom")

		assert.Error(t, err)
		require.Len(t, l.warns, 1)
		assert.Contains(t, l.warns[0], "dial tcp: refused")
	})

	t.Run("rejected by webhook", func(t *testing.T) {
		l := &warnLogger{}
		d := newTestDiscord(&fakeClient{status: 429}, l)

		err := d.ReportBug(context.Background(), "panic: boom")

		assert.Error(t, err)
		require.Len(t, l.warns, 1)
		assert.Contains(t, l.warns[0], "429")
	})
}
