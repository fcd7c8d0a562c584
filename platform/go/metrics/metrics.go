package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "timetable"

// Conflict sources.
const (
	SourcePrecheck = "precheck"
	SourceStorage  = "storage"
)

var (
	once sync.Once

	conflictsDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflicts_detected_total",
			Help:      "Count of double-booking conflicts reported, by axis and detection source.",
		},
		[]string{"axis", "source"},
	)

	entryWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entry_writes_total",
			Help:      "Count of timetable entry writes by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	gridBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grid_build_seconds",
			Help:      "Time spent projecting a weekly grid.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	staffLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "staff_directory_lookups_total",
			Help:      "Staff name lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(conflictsDetected, entryWrites, gridBuildSeconds, staffLookups)
	})
}

func IncConflict(axis, source string) {
	conflictsDetected.WithLabelValues(axis, source).Inc()
}

func IncEntryWrite(operation, outcome string) {
	entryWrites.WithLabelValues(operation, outcome).Inc()
}

func ObserveGridBuild(elapsed time.Duration) {
	gridBuildSeconds.Observe(elapsed.Seconds())
}

func AddStaffLookups(result string, n int) {
	if n <= 0 {
		return
	}
	staffLookups.WithLabelValues(result).Add(float64(n))
}
