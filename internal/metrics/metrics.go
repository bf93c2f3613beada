// Package metrics exposes Prometheus metrics for a task store.
//
// A Collector owns its own registry rather than the global default, so
// several stores (or tests) never collide.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
)

// Collector tracks mutation counts and rank sizes of a taskdb.DB.
type Collector struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	tasks     *prometheus.GaugeVec
	version   prometheus.Gauge
}

// New creates a Collector with a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "burner_mutations_total",
			Help: "Mutations submitted to the task store, by operation and whether the store changed",
		}, []string{"op", "changed"}),
		tasks: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "burner_tasks",
			Help: "Number of tasks per rank",
		}, []string{"rank"}),
		version: factory.NewGauge(prometheus.GaugeOpts{
			Name: "burner_store_version",
			Help: "Current version token of the task store",
		}),
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe subscribes to db. Gauges are set immediately and after every
// mutation; the returned function stops observing.
func (c *Collector) Observe(db *taskdb.DB) (stop func()) {
	c.refresh(db)
	return db.Subscribe(func(ch taskdb.Change) {
		c.mutations.WithLabelValues(ch.Op, strconv.FormatBool(ch.Changed)).Inc()
		c.refresh(db)
	})
}

func (c *Collector) refresh(db *taskdb.DB) {
	for _, r := range task.Ranks {
		c.tasks.WithLabelValues(r.String()).Set(float64(db.RankLen(r)))
	}
	c.version.Set(float64(db.Version()))
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
