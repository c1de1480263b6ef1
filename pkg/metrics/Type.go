package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric is registered on Registerer when it is created.
type Metric interface {
	Register()
	Collector() prometheus.Collector
}

type Counter struct {
	metric *prometheus.CounterVec
}

type Gauge struct {
	metric *prometheus.GaugeVec
}

type Histogram struct {
	metric *prometheus.HistogramVec
}
