package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(conflictsDetected.WithLabelValues("room", SourceStorage))
	IncConflict("room", SourceStorage)
	require.Equal(t, before+1, testutil.ToFloat64(conflictsDetected.WithLabelValues("room", SourceStorage)))

	writes := testutil.ToFloat64(entryWrites.WithLabelValues("create", "ok"))
	IncEntryWrite("create", "ok")
	require.Equal(t, writes+1, testutil.ToFloat64(entryWrites.WithLabelValues("create", "ok")))

	hits := testutil.ToFloat64(staffLookups.WithLabelValues("hit"))
	AddStaffLookups("hit", 3)
	AddStaffLookups("hit", 0)
	require.Equal(t, hits+3, testutil.ToFloat64(staffLookups.WithLabelValues("hit")))

	ObserveGridBuild(15 * time.Millisecond)
	require.Equal(t, 1, testutil.CollectAndCount(gridBuildSeconds))
}
