package probe

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	runs          *prometheus.CounterVec
	bytesReceived prometheus.Counter
	duration      prometheus.Histogram
}

func initMetrics(register bool) *metrics {
	m := &metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "probe",
			Name:      "runs_total",
			Help:      "Total number of probe runs by verdict",
		}, []string{"verdict"}),
		bytesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "echoprobe",
			Subsystem: "probe",
			Name:      "bytes_received_total",
			Help:      "Total number of echoed bytes read back from the peer",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "echoprobe",
			Subsystem: "probe",
			Name:      "duration_seconds",
			Help:      "Wall time of a probe run from connect to verdict",
			Buckets:   []float64{0.01, 0.1, 1, 5, 30, 100, 300},
		}),
	}

	if register {
		prometheus.MustRegister(
			m.runs,
			m.bytesReceived,
			m.duration,
		)
	}
	return m
}

func (m *metrics) record(res Result) {
	m.runs.WithLabelValues(res.Verdict.String()).Inc()
	m.bytesReceived.Add(float64(len(res.Received)))
	m.duration.Observe(res.Duration.Seconds())
}
