// Package session carries the authenticated principal through request contexts
// and fans out sign-in/sign-out events to explicit subscribers.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"groundio/internal/domain/user"

	"github.com/google/uuid"
)

var ErrSubscriptionClosed = errors.New("session subscription closed")

type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsMerchant() bool {
	return p.Role == user.RoleMerchant
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok && p.UserID != uuid.Nil
}

type EventKind string

const (
	EventSignedIn  EventKind = "signed_in"
	EventSignedOut EventKind = "signed_out"
)

type Event struct {
	Kind   EventKind `json:"kind"`
	UserID uuid.UUID `json:"user_id"`
	Role   user.Role `json:"role,omitempty"`
	At     time.Time `json:"at"`
}

const defaultBuffer = 8

// Hub is an in-process broker of auth state changes keyed by user.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*Subscription]struct{}
	buffer int
}

func NewHub() *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]map[*Subscription]struct{}),
		buffer: defaultBuffer,
	}
}

func (h *Hub) Subscribe(userID uuid.UUID) *Subscription {
	sub := &Subscription{
		hub:    h,
		userID: userID,
		ch:     make(chan Event, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*Subscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	return sub
}

// Publish never blocks; a subscriber with a full buffer misses the event.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[ev.UserID] {
		select {
		case sub.ch <- ev:
		default:
			slog.Warn("dropping session event for slow subscriber", "user_id", ev.UserID, "kind", ev.Kind)
		}
	}
}

func (h *Hub) SubscriberCount(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[sub.userID]
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.userID)
	}
	close(sub.ch)
}

type Subscription struct {
	hub    *Hub
	userID uuid.UUID
	ch     chan Event
	once   sync.Once
}

// Next blocks until an event arrives, ctx is done, or the subscription is closed.
func (s *Subscription) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev, ok := <-s.ch:
		if !ok {
			return Event{}, ErrSubscriptionClosed
		}
		return ev, nil
	}
}

func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}
