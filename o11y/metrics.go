package o11y

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Rendered pages by page name.",
	}, []string{"page"})

	ProjectsViewRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_view_renders_total",
		Help:      "Rendered projects views by tab and filter mode.",
	}, []string{"tab", "mode", "partial"})

	EmptyProjectResults = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_view_empty_results_total",
		Help:      "Projects views whose filters matched nothing.",
	})

	ContactMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})

	ContentReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_reloads_total",
		Help:      "Content reloads by outcome.",
	}, []string{"outcome"})
)
