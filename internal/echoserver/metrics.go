package echoserver

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	accepted    prometheus.Counter
	rejected    prometheus.Counter
	errors      prometheus.Counter
	bytesEchoed prometheus.Counter
}

func initMetrics(register bool) *metrics {
	m := &metrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "echoserver",
			Name:      "connections_accepted_total",
			Help:      "Total number of connections handed to a handler",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "echoserver",
			Name:      "connections_rejected_total",
			Help:      "Total number of connections closed because max_connections was reached",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "echoserver",
			Name:      "errors_total",
			Help:      "Total number of accept, read and write errors",
		}),
		bytesEchoed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "echoserver",
			Name:      "bytes_written_total",
			Help:      "Total number of response bytes written back to clients",
		}),
	}

	if register {
		prometheus.MustRegister(
			m.accepted,
			m.rejected,
			m.errors,
			m.bytesEchoed,
		)
	}
	return m
}

func (m *metrics) incError() {
	m.errors.Inc()
}
