package smtp

import "github.com/focus-functions/internal/config"

// Transport is the process-wide mail gateway handle. It is either configured
// (holding a Mailer and the sender address) or unconfigured; the zero value is unconfigured.
type Transport struct {
	mailer Mailer
	from   string
}

// Configured wraps a ready Mailer that sends as from.
func Configured(m Mailer, from string) Transport {
	return Transport{mailer: m, from: from}
}

// Unconfigured returns a transport that refuses to send.
func Unconfigured() Transport {
	return Transport{}
}

// NewTransport builds the transport from Gmail credentials. Missing either
// credential yields an unconfigured transport.
func NewTransport(cfg *config.Config) Transport {
	if !cfg.MailConfigured() {
		return Unconfigured()
	}
	return Configured(NewMailer(cfg), cfg.GmailUser)
}

// Mailer returns the underlying mailer and whether the transport is configured.
func (t Transport) Mailer() (Mailer, bool) {
	return t.mailer, t.mailer != nil
}

// From is the sender address used for every message.
func (t Transport) From() string { return t.from }
