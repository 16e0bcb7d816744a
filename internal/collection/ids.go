package collection

import (
	"sync"
	"time"
)

// IDGenerator mints numeric, millisecond-derived entity identifiers. The
// source of truth is the wall clock, but the generator never hands out the
// same value twice even when creations land inside one millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
