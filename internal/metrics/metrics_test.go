package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villaoasis/internal/domain"
	"villaoasis/internal/eventbus"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := New(reg)
	require.NoError(t, err)
	require.NotNil(t, m)

	m.IncSectionView("Home")
	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestNew_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordMove("gallery", "auto", domain.CarouselState{})
	m.RecordTimer("gallery", true, "mount")
	m.RecordPageSize(domain.CarouselState{})
	m.SetState(domain.CarouselState{})
	m.IncSectionView("Home")
}

func TestRecordMove(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	state := domain.CarouselState{Name: "reviews", Index: 3, PageSize: 3, Running: true}
	m.RecordMove("reviews", "auto", state)
	m.RecordMove("reviews", "auto", state)
	m.RecordMove("reviews", "manual", state)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.moves.WithLabelValues("reviews", "auto")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.moves.WithLabelValues("reviews", "manual")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.index.WithLabelValues("reviews")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.pageSize.WithLabelValues("reviews")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.running.WithLabelValues("reviews")))
}

func TestRecordTimer(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	m.RecordTimer("gallery", true, "mount")
	m.RecordTimer("gallery", false, "manual")
	m.RecordTimer("gallery", true, "manual")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.timerArms.WithLabelValues("gallery")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.timerCancels.WithLabelValues("gallery", "manual")))
}

func TestSubscribe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	bus := eventbus.New(nil)
	unsub := m.Subscribe(bus)

	gallery := domain.CarouselState{Name: "gallery", Index: 0, PageSize: 1, Running: true}
	bus.Publish(eventbus.CarouselStartedEvent{State: gallery})
	bus.Publish(eventbus.CarouselTimerEvent{Carousel: "gallery", Armed: true, Trigger: "mount"})
	gallery.Index = 1
	bus.Publish(eventbus.CarouselMovedEvent{Carousel: "gallery", Trigger: "swipe", From: 0, To: 1, State: gallery})
	bus.Publish(eventbus.PageSizeChangedEvent{Carousel: "reviews", State: domain.CarouselState{Name: "reviews", Index: 6, PageSize: 3}})
	bus.Publish(eventbus.SectionChangedEvent{From: "Home", To: "Gallery"})
	gallery.Running = false
	bus.Publish(eventbus.CarouselStoppedEvent{State: gallery})
	bus.Close()
	unsub()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.moves.WithLabelValues("gallery", "swipe")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.timerArms.WithLabelValues("gallery")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pageSizeChanges.WithLabelValues("reviews")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.index.WithLabelValues("reviews")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sectionViews.WithLabelValues("Gallery")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.running.WithLabelValues("gallery")))

	expected := `
# HELP villaoasis_carousel_index Current start index
# TYPE villaoasis_carousel_index gauge
villaoasis_carousel_index{carousel="gallery"} 1
villaoasis_carousel_index{carousel="reviews"} 6
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "villaoasis_carousel_index"))
}
