package servicepoint

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors of a Connection. A nil *metrics
// records nothing.
type metrics struct {
	packetsSent *prometheus.CounterVec
	bytesSent   prometheus.Counter
	sendErrors  *prometheus.CounterVec
}

// newMetrics registers the collectors with reg. Connections sharing a
// registry share collectors.
func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	if reg == nil {
		return nil
	}
	if namespace == "" {
		namespace = "servicepoint"
	}

	return &metrics{
		packetsSent: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_sent_total",
			Help:      "Total number of packets handed to the transport",
		}, []string{"command"})),

		bytesSent: register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_sent_total",
			Help:      "Total number of packet bytes handed to the transport",
		})),

		sendErrors: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_errors_total",
			Help:      "Total number of commands that failed to encode or send",
		}, []string{"command"})),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metrics) sent(code CommandCode, n int) {
	if m == nil {
		return
	}
	m.packetsSent.WithLabelValues(code.String()).Inc()
	m.bytesSent.Add(float64(n))
}

func (m *metrics) failed(code CommandCode) {
	if m == nil {
		return
	}
	m.sendErrors.WithLabelValues(code.String()).Inc()
}
