package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	MailSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focus_mail_sent_total",
		Help: "Total number of emails handed to the mail gateway successfully",
	}, []string{"template"})
	MailFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focus_mail_failed_total",
		Help: "Total number of email handler invocations that failed, by error kind",
	}, []string{"template", "kind"})
	SweepRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "focus_otp_sweep_runs_total",
		Help: "Total number of OTP expiry sweeps by outcome (empty, success, error)",
	}, []string{"outcome"})
	SweepDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "focus_otp_sweep_deleted_total",
		Help: "Total number of expired OTP records deleted by the sweeper",
	})
)

func init() {
	prometheus.MustRegister(MailSent)
	prometheus.MustRegister(MailFailed)
	prometheus.MustRegister(SweepRuns)
	prometheus.MustRegister(SweepDeleted)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
