package apptest

import (
	"sync"
	"time"
)

// Clock reloj fijo y ajustable.
type Clock struct {
	mu  sync.Mutex
	now time.Time
	loc *time.Location
}

// COT zona fija -05:00, evita depender de zoneinfo en los tests.
var COT = time.FixedZone("COT", -5*3600)

// NewClock reloj detenido en now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now.In(COT), loc: COT}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Location() *time.Location { return c.loc }

// Advance adelanta el reloj.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
