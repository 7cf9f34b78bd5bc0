package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New("test")

	m.ObserveSelection(true)
	m.ObserveSelection(true)
	m.ObserveSelection(false)
	m.ObserveTracking(KindImpression, nil)
	m.ObserveTracking(KindClick, errors.New("boom"))
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Selections.WithLabelValues("shown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Selections.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrackingWrites.WithLabelValues(KindImpression, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrackingWrites.WithLabelValues(KindClick, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OpenSessions))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSelection(true)
		m.ObserveTracking(KindClick, nil)
		m.SessionOpened()
		m.SessionClosed()
		_ = m.Handler()
	})
}
