package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/engine"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return values
}

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBind(&engine.Report{
		Slots:      6,
		Unresolved: []engine.Issue{{Parameter: "A: x", Target: "B: x"}},
	}, time.Millisecond)
	m.ObserveBind(&engine.Report{Slots: 7, Cycles: []engine.Issue{{}, {}}}, time.Millisecond)
	m.ObserveRender(100)
	m.ObserveRender(28)

	values := gather(t, reg)
	assert.Equal(t, 2.0, values["phisynth_binds_total"])
	assert.Equal(t, 2.0, values["phisynth_bind_duration_seconds"])
	assert.Equal(t, 128.0, values["phisynth_samples_rendered_total"])
	assert.Equal(t, 7.0, values["phisynth_backing_slots"])
	assert.Equal(t, 0.0, values["phisynth_unresolved_links"])
	assert.Equal(t, 2.0, values["phisynth_cyclic_links"])
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).ObserveRender(5)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "phisynth_samples_rendered_total 5")
}
