package baseurl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK          = "ok"
	resultNotABase    = "not_a_base"
	resultParseFailed = "parse_failed"
)

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baseurl_conversions_total",
			Help: "Conversions into a base url, by result",
		},
		[]string{"result"},
	)

	refusedMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baseurl_refused_mutations_total",
			Help: "Scheme and host changes refused to keep a url usable as a base",
		},
		[]string{"operation"},
	)
)

func recordConversion(result string) {
	conversionsTotal.WithLabelValues(result).Inc()
}

func recordRefusal(operation string) {
	refusedMutationsTotal.WithLabelValues(operation).Inc()
}
