package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccessful   = "successful"
	statusUnsuccessful = "unsuccessful"
)

var (
	invalidRequestsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polyglot_invalid_requests_total",
		Help: "The total number of invalid requests received",
	})

	errorsCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polyglot_errors_total",
		Help: "The total number of error responses sent",
	})

	objectsProcessedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polyglot_objects_processed_total",
		Help: "The total number of texts processed, by outcome",
	}, []string{"status"})

	detectedLanguageCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polyglot_detected_language_total",
		Help: "Counts of languages detected",
	}, []string{"language"})
)

func init() {
	// expose both series from the start
	objectsProcessedCounter.WithLabelValues(statusSuccessful)
	objectsProcessedCounter.WithLabelValues(statusUnsuccessful)
}
