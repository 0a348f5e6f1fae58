// Package metrics exposes Prometheus instruments for document operations.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts lifecycle operations per collection. A nil *Metrics is a
// no-op so services can run without instrumentation in tests.
type Metrics struct {
	recordsCreated    *prometheus.CounterVec
	recordsDeleted    *prometheus.CounterVec
	statusChanges     *prometheus.CounterVec
	documentsRendered *prometheus.CounterVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		recordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billingdesk_records_created_total",
			Help: "Records appended, by collection.",
		}, []string{"collection"}),
		recordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billingdesk_records_deleted_total",
			Help: "Records removed, by collection.",
		}, []string{"collection"}),
		statusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billingdesk_status_changes_total",
			Help: "Status transitions applied, by collection and new status.",
		}, []string{"collection", "status"}),
		documentsRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "billingdesk_documents_rendered_total",
			Help: "PDF artifacts produced, by document kind.",
		}, []string{"kind"}),
	}
}

// RecordCreated increments the created counter for a collection.
func (m *Metrics) RecordCreated(collection string) {
	if m == nil {
		return
	}
	m.recordsCreated.WithLabelValues(strings.TrimSpace(collection)).Inc()
}

// RecordDeleted increments the deleted counter for a collection.
func (m *Metrics) RecordDeleted(collection string) {
	if m == nil {
		return
	}
	m.recordsDeleted.WithLabelValues(strings.TrimSpace(collection)).Inc()
}

// StatusChanged increments the transition counter.
func (m *Metrics) StatusChanged(collection, status string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(strings.TrimSpace(collection), strings.TrimSpace(status)).Inc()
}

// DocumentRendered increments the render counter for a document kind.
func (m *Metrics) DocumentRendered(kind string) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(strings.TrimSpace(kind)).Inc()
}
