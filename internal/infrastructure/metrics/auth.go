package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(signInsTotal, emailsSentTotal) }

var (
	signInsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_sign_ins_total",
			Help: "Sign-in attempts by resolved role and result.",
		},
		[]string{"role", "result"},
	)

	emailsSentTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_emails_sent_total",
			Help: "Emails delivered by campaign sends.",
		},
	)
)

func IncSignIn(role, result string) {
	signInsTotal.WithLabelValues(norm(role), norm(result)).Inc()
}

func AddEmailsSent(n int) {
	emailsSentTotal.Add(float64(n))
}
