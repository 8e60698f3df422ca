package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds the service collectors. A private registry keeps tests isolated.
type Registry struct {
	*prometheus.Registry

	MemberWrites     *prometheus.CounterVec
	ReportsGenerated *prometheus.CounterVec
	ReportPages      prometheus.Histogram
}

// Write results
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// New creates and registers all collectors
func New() *Registry {
	r := &Registry{
		Registry: prometheus.NewRegistry(),
		MemberWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_member_writes_total",
			Help: "Member record writes by operation and result.",
		}, []string{"op", "result"}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_reports_generated_total",
			Help: "PDF reports rendered by kind.",
		}, []string{"kind"}),
		ReportPages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "registry_report_pages",
			Help:    "Page count of rendered reports.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
	}

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.MemberWrites,
		r.ReportsGenerated,
		r.ReportPages,
	)
	return r
}

// ObserveWrite counts a member write
func (r *Registry) ObserveWrite(op, result string) {
	if r == nil {
		return
	}
	r.MemberWrites.WithLabelValues(op, result).Inc()
}

// ObserveReport counts a rendered report and its size in pages
func (r *Registry) ObserveReport(kind string, pages int) {
	if r == nil {
		return
	}
	r.ReportsGenerated.WithLabelValues(kind).Inc()
	r.ReportPages.Observe(float64(pages))
}
