package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBus_DeliversInPublishOrder(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var got []int
	b.Subscribe(EventCarouselMoved, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(CarouselMovedEvent).To)
	})

	for i := 0; i < 50; i++ {
		b.Publish(CarouselMovedEvent{Carousel: "gallery", To: i})
	}
	b.Close()

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestBus_OnlyMatchingType(t *testing.T) {
	b := New(nil)

	moved, timers := 0, 0
	b.Subscribe(EventCarouselMoved, func(DomainEvent) { moved++ })
	b.Subscribe(EventCarouselTimer, func(DomainEvent) { timers++ })

	b.Publish(CarouselMovedEvent{})
	b.Publish(CarouselTimerEvent{Armed: true})
	b.Publish(CarouselTimerEvent{Armed: false})
	b.Close()

	assert.Equal(t, 1, moved)
	assert.Equal(t, 2, timers)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New(nil)

	var first, second int
	unsubFirst := b.Subscribe(EventSectionChanged, func(DomainEvent) { first++ })
	b.Subscribe(EventSectionChanged, func(DomainEvent) { second++ })

	done := make(chan struct{})
	b.Subscribe(EventAppReady, func(DomainEvent) { close(done) })

	b.Publish(SectionChangedEvent{From: "Home", To: "Gallery"})
	b.Publish(AppReadyEvent{})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not deliver")
	}

	unsubFirst()
	unsubFirst()
	b.Publish(SectionChangedEvent{From: "Gallery", To: "Reviews"})
	b.Close()

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestBus_RecoversHandlerPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := New(zap.New(core).Sugar())

	after := 0
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { after++ })

	b.Publish(ErrorEvent{Message: "x"})
	b.Close()

	assert.Equal(t, 1, after, "later handlers still run")
	entries := logs.FilterMessage("event handler panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
}

func TestBus_PublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	count := 0
	b.Subscribe(EventConfigLoaded, func(DomainEvent) { count++ })

	b.Close()
	b.Close()
	b.Publish(ConfigLoadedEvent{Path: "x"})

	assert.Equal(t, 0, count)
}

func TestBus_LogsPublishedLifecycleEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := New(zap.New(core).Sugar())

	b.Publish(ConfigLoadedEvent{})
	b.Publish(CarouselMovedEvent{})
	b.Close()

	entries := logs.FilterMessage("publishing event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(EventConfigLoaded), entries[0].ContextMap()["type"])
}
