package metrics

import "github.com/prometheus/client_golang/prometheus"

func (c *Counter) Register() {
	Registerer.MustRegister(c.metric)
}

func (c *Counter) Collector() prometheus.Collector {
	return c.metric
}

func (c *Counter) Increment(labels ...string) {
	c.metric.WithLabelValues(labels...).Inc()
}

func (c *Counter) Get() *prometheus.CounterVec {
	return c.metric
}

func (g *Gauge) Register() {
	Registerer.MustRegister(g.metric)
}

func (g *Gauge) Collector() prometheus.Collector {
	return g.metric
}

func (g *Gauge) Set(value float64, labels ...string) {
	g.metric.WithLabelValues(labels...).Set(value)
}

func (g *Gauge) Inc(labels ...string) {
	g.metric.WithLabelValues(labels...).Inc()
}

func (g *Gauge) Dec(labels ...string) {
	g.metric.WithLabelValues(labels...).Dec()
}

func (g *Gauge) Get() *prometheus.GaugeVec {
	return g.metric
}

func (h *Histogram) Register() {
	Registerer.MustRegister(h.metric)
}

func (h *Histogram) Collector() prometheus.Collector {
	return h.metric
}

func (h *Histogram) Observe(value float64, labels ...string) {
	h.metric.WithLabelValues(labels...).Observe(value)
}

func (h *Histogram) Get() *prometheus.HistogramVec {
	return h.metric
}
