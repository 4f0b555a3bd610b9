package email

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/focus-functions/internal/domain"
)

// Template names.
const (
	TemplateOTP     = "otp"
	TemplateWelcome = "welcome"
)

const (
	otpSubject     = "🔐 Your Focus OTP Code"
	welcomeSubject = "🎉 Welcome to Focus!"
)

// Bodies are rendered with text/template, so caller values are inserted as-is.
// SECURITY REVIEW: username/otp are not HTML-escaped; callers are assumed trusted.
const otpBody = `
        <div style="font-family: Segoe UI; max-width: 500px;">
          <h1 style="color: #4a9b8e;">Focus</h1>
          <p>Hi {{ .Username }},</p>
          <p>Your OTP code:</p>
          <div style="background: #f0f4f8; padding: 20px;">
            <p style="font-size: 32px; color: #4a9b8e;">
              {{ .OTP }}
            </p>
          </div>
          <p style="color: #e8836b;">Expires in {{ div .LifetimeSeconds 60 }} minutes</p>
        </div>`

const welcomeBody = `
        <div style="font-family: Segoe UI;">
          <h2 style="color: #4a9b8e;">
            Welcome to Focus, {{ .Username }}!
          </h2>
          <p>Start achieving your daily goals today.</p>
        </div>`

// OTPData is the data for the OTP template.
type OTPData struct {
	Username        string
	OTP             string
	LifetimeSeconds int64
}

// WelcomeData is the data for the welcome template.
type WelcomeData struct {
	Username string
}

type renderer struct {
	otp     *template.Template
	welcome *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		otp:     template.Must(template.New(TemplateOTP).Funcs(sprig.TxtFuncMap()).Parse(otpBody)),
		welcome: template.Must(template.New(TemplateWelcome).Funcs(sprig.TxtFuncMap()).Parse(welcomeBody)),
	}
}

func (r *renderer) OTP(username, otp string) (string, error) {
	return execute(r.otp, OTPData{
		Username:        username,
		OTP:             otp,
		LifetimeSeconds: int64(domain.OTPLifetime / time.Second),
	})
}

func (r *renderer) Welcome(username string) (string, error) {
	return execute(r.welcome, WelcomeData{Username: username})
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
