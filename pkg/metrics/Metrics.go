package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registerer receives every metric of this package, /metrics serves the default gatherer.
var Registerer prometheus.Registerer = prometheus.DefaultRegisterer

// PushBuckets spans sub-second pushes of small repositories up to the ten minute push timeout.
var PushBuckets = []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600}

func NewCounter(name string, help string, labels []string) *Counter {
	counter := &Counter{
		metric: prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels),
	}

	counter.Register()
	return counter
}

func NewGauge(name string, help string, labels []string) *Gauge {
	gauge := &Gauge{
		metric: prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels),
	}

	gauge.Register()
	return gauge
}

func NewHistogram(name string, help string, labels []string, buckets []float64) *Histogram {
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	histogram := &Histogram{
		metric: prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels),
	}

	histogram.Register()
	return histogram
}
