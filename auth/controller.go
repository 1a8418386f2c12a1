// Package auth owns the canonical in-memory Session for the running console
// and bridges login/logout actions and externally published session changes
// into it.
package auth

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/paycanvas/console/api"
	"github.com/paycanvas/console/session"
)

// Controller seeds its Session from the credential store at construction and
// tracks every Session published on the bus for the rest of its lifetime, so
// a background token refresh is reflected without any caller involvement.
type Controller struct {
	client *api.Client
	store  *session.Store
	bus    *session.Bus

	mu          sync.RWMutex
	current     session.Session
	unsubscribe func()
}

func NewController(client *api.Client, store *session.Store, bus *session.Bus) (*Controller, error) {
	if client == nil {
		return nil, errors.New("[NewController] api client is required")
	}
	if store == nil {
		return nil, errors.New("[NewController] credential store is required")
	}
	if bus == nil {
		return nil, errors.New("[NewController] session bus is required")
	}

	c := &Controller{
		client:  client,
		store:   store,
		bus:     bus,
		current: store.Load(),
	}
	c.unsubscribe = bus.Subscribe(func(s session.Session) {
		c.mu.Lock()
		c.current = s
		c.mu.Unlock()
	})
	return c, nil
}

// Current returns a read-only snapshot of the held Session.
func (c *Controller) Current() session.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Login authenticates against the backend, persists the resulting Session and
// publishes it. Authentication failures surface to the caller unretried.
func (c *Controller) Login(ctx context.Context, email, password string) (session.Session, error) {
	sess, err := c.client.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[Controller.Login] authenticate")
	}

	c.store.Save(sess)
	c.mu.Lock()
	c.current = sess
	c.mu.Unlock()
	c.bus.Publish(sess)

	log.Info().Str("role", string(sess.User.Role)).Msg("logged in")
	return sess, nil
}

// Logout clears the persisted credentials and publishes the unauthenticated
// default Session.
func (c *Controller) Logout() {
	c.store.Clear()
	c.mu.Lock()
	c.current = session.Default()
	c.mu.Unlock()
	c.bus.Publish(session.Default())
	log.Info().Msg("logged out")
}

// Close detaches the controller from the session bus.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}
