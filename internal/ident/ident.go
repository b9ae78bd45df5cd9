// Package ident issues order identifiers.
package ident

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const Prefix = "ORD-"

type Generator interface {
	NewID() string
}

// Timestamp issues ORD-<unix millis> ids. When two ids are requested within
// the same millisecond the later one is bumped, so ids never repeat inside
// one process. Ids issued by earlier processes are covered through Observe.
type Timestamp struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestamp() *Timestamp {
	return &Timestamp{now: time.Now}
}

func (g *Timestamp) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return Prefix + strconv.FormatInt(ms, 10)
}

// Observe makes every later id sort after the given ones. Ids not in the
// ORD-<number> form are ignored.
func (g *Timestamp) Observe(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		digits, ok := strings.CutPrefix(id, Prefix)
		if !ok {
			continue
		}
		ms, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			continue
		}
		g.last = max(g.last, ms)
	}
}

type UUID struct{}

func (UUID) NewID() string {
	return Prefix + uuid.NewString()
}

// New picks a generator by name; unknown names fall back to timestamps.
func New(strategy string) Generator {
	switch strategy {
	case "uuid":
		return UUID{}
	default:
		return NewTimestamp()
	}
}
