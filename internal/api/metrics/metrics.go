// Package metrics defines the custom Prometheus metrics of the CivicConnect
// portal. HTTP request metrics come from echoprometheus; this package only
// covers what the pages and forms do.
//
// Metrics are registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "civicconnect"

// Submission outcomes used as the "outcome" label.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// PagesRenderedTotal counts rendered pages.
// Label:
//   - view: the view name (e.g. "citizen-dashboard", "not-found")
var PagesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_rendered_total",
		Help:      "Total number of pages rendered, by view.",
	},
	[]string{"view"},
)

// FormSubmissionsTotal counts form posts.
// Labels:
//   - form: "report-issue" or "register"
//   - outcome: "accepted", "rejected" (option outside its set) or "failed"
var FormSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_submissions_total",
		Help:      "Total number of form submissions, by form and outcome.",
	},
	[]string{"form", "outcome"},
)

// ReportsByCategoryTotal counts accepted reports.
// Label:
//   - category: the selected category, or "none" for the placeholder
var ReportsByCategoryTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_by_category_total",
		Help:      "Total number of acknowledged issue reports, by category.",
	},
	[]string{"category"},
)
