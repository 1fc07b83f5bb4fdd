package carousel_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"villaoasis/internal/carousel"
	"villaoasis/internal/carousel/carouseltest"
)

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) Observe(ev carousel.Event) {
	m.Called(ev)
}

func TestObserver_SwipeLifecycle(t *testing.T) {
	obs := &mockObserver{}
	event := func(kind carousel.Kind, trigger carousel.Trigger, from, to int) carousel.Event {
		return carousel.Event{Carousel: "gallery", Kind: kind, Trigger: trigger, From: from, To: to, PageSize: 1}
	}
	obs.On("Observe", event(carousel.KindTimerArmed, carousel.TriggerMount, 0, 0)).Once()
	obs.On("Observe", event(carousel.KindTimerCanceled, carousel.TriggerSwipe, 0, 0)).Once()
	obs.On("Observe", event(carousel.KindMoved, carousel.TriggerSwipe, 0, 1)).Once()
	obs.On("Observe", event(carousel.KindTimerArmed, carousel.TriggerSwipe, 1, 1)).Once()
	obs.On("Observe", event(carousel.KindTimerCanceled, carousel.TriggerTeardown, 1, 1)).Once()

	e, err := carousel.NewImage(seq(5), carouseltest.NewManualScheduler(),
		carousel.WithName("gallery"),
		carousel.WithObserver(obs))
	require.NoError(t, err)

	e.Start()
	e.OnTouchStart(300)
	e.OnTouchEnd(200)
	e.Stop()
	e.Stop()

	obs.AssertExpectations(t)
}

func TestObserver_ShortSwipeIsSilent(t *testing.T) {
	obs := &mockObserver{}
	e, err := carousel.NewImage(seq(5), nil, carousel.WithObserver(obs))
	require.NoError(t, err)

	e.OnTouchStart(300)
	e.OnTouchEnd(260)

	obs.AssertNotCalled(t, "Observe", mock.Anything)
}
