package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zbonzo/CrimsonFall-sub000/telemetry"
	"github.com/zbonzo/CrimsonFall-sub000/telemetry/telemetrymock"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := telemetry.NewBus()

	var received telemetry.Event
	count := 0
	bus.Subscribe(telemetry.RoundStarted, func(e telemetry.Event) {
		count++
		received = e
	})

	bus.Publish(telemetry.Event{Topic: telemetry.RoundStarted, Payload: 3})

	assert.Equal(t, 1, count)
	assert.Equal(t, telemetry.RoundStarted, received.Topic)
	assert.Equal(t, 3, received.Payload)
}

func TestBusOnlyMatchingTopicFires(t *testing.T) {
	bus := telemetry.NewBus()

	started, ended := 0, 0
	bus.Subscribe(telemetry.RoundStarted, func(telemetry.Event) { started++ })
	bus.Subscribe(telemetry.RoundEnded, func(telemetry.Event) { ended++ })

	bus.Publish(telemetry.Event{Topic: telemetry.RoundStarted})

	assert.Equal(t, 1, started)
	assert.Equal(t, 0, ended)
}

func TestBusMultipleSubscribersInOrder(t *testing.T) {
	bus := telemetry.NewBus()

	var order []string
	bus.Subscribe(telemetry.ActionResolved, func(telemetry.Event) { order = append(order, "first") })
	bus.Subscribe(telemetry.ActionResolved, func(telemetry.Event) { order = append(order, "second") })

	bus.Publish(telemetry.Event{Topic: telemetry.ActionResolved})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := telemetry.NewBus()

	count := 0
	id := bus.Subscribe(telemetry.EntityDied, func(telemetry.Event) { count++ })

	require.NoError(t, bus.Unsubscribe(id))
	bus.Publish(telemetry.Event{Topic: telemetry.EntityDied})

	assert.Equal(t, 0, count)
}

func TestBusUnsubscribeUnknownID(t *testing.T) {
	bus := telemetry.NewBus()
	err := bus.Unsubscribe(999)
	assert.Error(t, err)
}

func TestBusClearRemovesAllSubscriptions(t *testing.T) {
	bus := telemetry.NewBus()

	count := 0
	bus.Subscribe(telemetry.RoundStarted, func(telemetry.Event) { count++ })
	bus.Clear()
	bus.Publish(telemetry.Event{Topic: telemetry.RoundStarted})

	assert.Equal(t, 0, count)
}

func TestBusPublishWithNoSubscribersIsNoop(t *testing.T) {
	bus := telemetry.NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(telemetry.Event{Topic: telemetry.RoundEnded})
	})
}

func TestMockEventBusSatisfiesEventBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := telemetrymock.NewMockEventBus(ctrl)
	mockBus.EXPECT().Subscribe(telemetry.RoundStarted, gomock.Any()).Return(uint64(1))
	mockBus.EXPECT().Publish(telemetry.Event{Topic: telemetry.RoundStarted})
	mockBus.EXPECT().Unsubscribe(uint64(1)).Return(nil)
	mockBus.EXPECT().Clear()

	var bus telemetry.EventBus = mockBus

	id := bus.Subscribe(telemetry.RoundStarted, func(telemetry.Event) {})
	assert.Equal(t, uint64(1), id)

	bus.Publish(telemetry.Event{Topic: telemetry.RoundStarted})
	require.NoError(t, bus.Unsubscribe(id))
	bus.Clear()
}
