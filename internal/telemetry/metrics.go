package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report-generation metrics, exposed by the serve command's /metrics
// endpoint.
var (
	ResultsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msgbench_results_loaded_total",
		Help: "Total number of benchmark result files loaded",
	})

	ChartsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "msgbench_charts_rendered_total",
		Help: "Total number of chart images rendered, by chart kind",
	}, []string{"kind"})

	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msgbench_reports_generated_total",
		Help: "Total number of full report runs completed",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "msgbench_http_requests_total",
		Help: "HTTP requests served by the charts server",
	}, []string{"path", "status"})
)
