package smtp

import (
	"context"
	"errors"
	"testing"

	"github.com/focus-functions/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestMailer_Send_BuildsHTMLMessage(t *testing.T) {
	d := &fakeDialer{}
	m := &mailer{dialer: d}

	err := m.Send(context.Background(), Message{
		From:    "focus@gmail.com",
		To:      "a@b.com",
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"focus@gmail.com"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"a@b.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, d.sent[0].GetHeader("Subject"))
}

func TestMailer_Send_WrapsDialerError(t *testing.T) {
	cause := errors.New("535 auth failed")
	m := &mailer{dialer: &fakeDialer{err: cause}}

	err := m.Send(context.Background(), Message{To: "a@b.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "535 auth failed")
}

func TestMailer_Send_CancelledContextSkipsDial(t *testing.T) {
	d := &fakeDialer{}
	m := &mailer{dialer: d}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Message{To: "a@b.com"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}

func TestNewTransport_UnconfiguredWithoutCredentials(t *testing.T) {
	_, ok := NewTransport(&config.Config{GmailUser: "focus@gmail.com"}).Mailer()
	assert.False(t, ok)

	_, ok = Transport{}.Mailer()
	assert.False(t, ok)
}

func TestNewTransport_ConfiguredSendsAsGmailUser(t *testing.T) {
	tr := NewTransport(&config.Config{
		GmailUser:        "focus@gmail.com",
		GmailAppPassword: "app-pass",
		SMTPHost:         "smtp.gmail.com",
		SMTPPort:         587,
	})

	m, ok := tr.Mailer()
	assert.True(t, ok)
	assert.NotNil(t, m)
	assert.Equal(t, "focus@gmail.com", tr.From())
}
