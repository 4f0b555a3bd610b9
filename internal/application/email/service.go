package email

import (
	"context"
	"log/slog"

	"github.com/focus-functions/internal/domain"
	"github.com/focus-functions/internal/infrastructure/smtp"
	"github.com/focus-functions/internal/metrics"
	"github.com/focus-functions/internal/pkg/validate"
)

// Service implements the two email callables.
type Service interface {
	SendOTPEmail(ctx context.Context, req domain.SendOTPEmailRequest) (domain.SendResult, error)
	SendWelcomeEmail(ctx context.Context, req domain.SendWelcomeEmailRequest) (domain.SendResult, error)
}

type service struct {
	transport smtp.Transport
	render    *renderer
}

// NewService wires the handlers to a mail transport built once at startup.
func NewService(transport smtp.Transport) Service {
	return &service{transport: transport, render: newRenderer()}
}

func (s *service) SendOTPEmail(ctx context.Context, req domain.SendOTPEmailRequest) (domain.SendResult, error) {
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, TemplateOTP, domain.InvalidArgument, "Missing required fields: email, otp, username", err)
	}
	mailer, ok := s.transport.Mailer()
	if !ok {
		return fail(ctx, TemplateOTP, domain.FailedPrecondition,
			"Email service not configured. Set GMAIL_USER and GMAIL_APP_PASSWORD.", domain.ErrNotConfigured)
	}

	html, err := s.render.OTP(req.Username, string(req.OTP))
	if err != nil {
		return fail(ctx, TemplateOTP, domain.Internal, "Failed to send OTP email: "+err.Error(), err)
	}
	msg := smtp.Message{From: s.transport.From(), To: req.Email, Subject: otpSubject, HTML: html}
	if err := mailer.Send(ctx, msg); err != nil {
		return fail(ctx, TemplateOTP, domain.Internal, "Failed to send OTP email: "+err.Error(), err)
	}

	metrics.MailSent.WithLabelValues(TemplateOTP).Inc()
	return domain.SendResult{Success: true}, nil
}

func (s *service) SendWelcomeEmail(ctx context.Context, req domain.SendWelcomeEmailRequest) (domain.SendResult, error) {
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, TemplateWelcome, domain.InvalidArgument, "Missing required fields: email, username", err)
	}
	mailer, ok := s.transport.Mailer()
	if !ok {
		return fail(ctx, TemplateWelcome, domain.FailedPrecondition, "Email service not configured.", domain.ErrNotConfigured)
	}

	html, err := s.render.Welcome(req.Username)
	if err != nil {
		return fail(ctx, TemplateWelcome, domain.Internal, "Failed to send welcome email: "+err.Error(), err)
	}
	msg := smtp.Message{From: s.transport.From(), To: req.Email, Subject: welcomeSubject, HTML: html}
	if err := mailer.Send(ctx, msg); err != nil {
		return fail(ctx, TemplateWelcome, domain.Internal, "Failed to send welcome email: "+err.Error(), err)
	}

	metrics.MailSent.WithLabelValues(TemplateWelcome).Inc()
	return domain.SendResult{Success: true}, nil
}

// fail logs the error with its cause and returns it as a CallableError.
func fail(ctx context.Context, tmpl string, kind domain.ErrorKind, msg string, cause error) (domain.SendResult, error) {
	slog.ErrorContext(ctx, "email error", "template", tmpl, "kind", kind.Code(), "msg", msg, "err", cause)
	metrics.MailFailed.WithLabelValues(tmpl, kind.Code()).Inc()
	return domain.SendResult{}, domain.NewCallableError(kind, msg, cause)
}
