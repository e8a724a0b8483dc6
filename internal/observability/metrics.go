package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregisters_total",
		Help:      "Number of successful activity unregistrations.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter)
}

// RecordSignup increments the signup counter for an activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregister increments the unregister counter for an activity.
func RecordUnregister(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}
