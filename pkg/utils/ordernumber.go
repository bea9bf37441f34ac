package utils

import (
	"fmt"
	"sync"
	"time"
)

// OrderNumberGenerator produces order numbers of the form ORD<millis><seq>.
// The sequence counter keeps numbers unique even when several orders are
// created within the same millisecond.
type OrderNumberGenerator struct {
	mu         sync.Mutex
	lastMillis int64
	seq        int
}

// NewOrderNumberGenerator creates a new generator
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{}
}

// Next returns the next unique order number
func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := time.Now().UnixMilli()
	if millis == g.lastMillis {
		g.seq++
	} else {
		g.lastMillis = millis
		g.seq = 0
	}

	return fmt.Sprintf("ORD%d%03d", millis, g.seq)
}
