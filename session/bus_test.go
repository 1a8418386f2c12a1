package session_test

import (
	"testing"

	"github.com/paycanvas/console/session"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := session.NewBus()
	var order []string
	bus.Subscribe(func(session.Session) { order = append(order, "first") })
	bus.Subscribe(func(session.Session) { order = append(order, "second") })
	bus.Subscribe(func(session.Session) { order = append(order, "third") })

	bus.Publish(session.Default())

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := session.NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(session.Session) { calls++ })

	bus.Publish(session.Default())
	unsubscribe()
	bus.Publish(session.Default())

	require.Equal(t, 1, calls)
}

func TestBusUnsubscribeDuringPublishKeepsInProgressDelivery(t *testing.T) {
	bus := session.NewBus()
	var delivered []string

	var unsubscribeSecond func()
	bus.Subscribe(func(session.Session) {
		delivered = append(delivered, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = bus.Subscribe(func(session.Session) {
		delivered = append(delivered, "second")
	})

	// The first listener removes the second mid-publish; the in-progress
	// publish still sees the listener list it started with.
	bus.Publish(session.Default())
	require.Equal(t, []string{"first", "second"}, delivered)

	bus.Publish(session.Default())
	require.Equal(t, []string{"first", "second", "first"}, delivered)
}

func TestBusSubscribeDuringPublishDoesNotReceiveThatPublish(t *testing.T) {
	bus := session.NewBus()
	lateCalls := 0
	bus.Subscribe(func(session.Session) {
		bus.Subscribe(func(session.Session) { lateCalls++ })
	})

	bus.Publish(session.Default())
	require.Equal(t, 0, lateCalls)

	bus.Publish(session.Default())
	require.Equal(t, 1, lateCalls)
}

func TestBusPublishPassesSessionByValue(t *testing.T) {
	bus := session.NewBus()
	var seen session.Session
	bus.Subscribe(func(s session.Session) { seen = s })

	published, err := session.NewAuthenticated("a", "r", "2024-01-01T00:00:00Z", session.User{ID: 1, Role: session.RoleStaff})
	require.NoError(t, err)
	bus.Publish(published)

	published.AccessToken = "mutated-after-publish"
	require.Equal(t, "a", seen.AccessToken)
}
