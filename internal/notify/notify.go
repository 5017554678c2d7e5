// Package notify manages transient user notifications. Each notification
// auto-dismisses a fixed interval after it was raised; removal is keyed by
// id, so overlapping notifications expiring out of order is fine.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notification for display purposes only.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Notification is one transient message.
type Notification struct {
	ID      uint64
	Level   Level
	Message string
	Raised  time.Time
}

// Center holds the currently visible notifications.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	nextID uint64
	active []Notification
	now    func() time.Time
}

// NewCenter builds a Center with the given TTL; zero uses DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// Push raises a notification and schedules its removal after the TTL.
func (c *Center) Push(level Level, message string) uint64 {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.active = append(c.active, Notification{
		ID:      id,
		Level:   level,
		Message: message,
		Raised:  c.now(),
	})
	c.mu.Unlock()

	time.AfterFunc(c.ttl, func() { c.Remove(id) })
	return id
}

// Success raises a success notification.
func (c *Center) Success(message string) uint64 { return c.Push(LevelSuccess, message) }

// Error raises an error notification.
func (c *Center) Error(message string) uint64 { return c.Push(LevelError, message) }

// Info raises an informational notification.
func (c *Center) Info(message string) uint64 { return c.Push(LevelInfo, message) }

// Remove dismisses the notification with the given id. Unknown ids are
// ignored, which makes the scheduled expiry idempotent with manual
// dismissal.
func (c *Center) Remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active returns the currently visible notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.active) == 0 {
		return nil
	}
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}
