package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "account_registrations_total",
			Help: "Total successful registrations",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_logins_total",
			Help: "Total login attempts",
		},
		[]string{"result"}, // success|failure
	)

	ProfileUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "account_profile_updates_total",
			Help: "Total successful profile updates",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(ProfileUpdatesTotal)
}
