package service

import (
	"math/rand"
	"sync"
	"time"
)

// LockedRandom - a seeded source safe to share between concurrent requests.
type LockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource - seeded source for the bot's random fallback; a zero seed is taken from the clock.
func NewRandomSource(seed int64) *LockedRandom {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &LockedRandom{rnd: rand.New(rand.NewSource(seed))} //nolint: gosec // it's ok
}

// Intn - a random int in [0, n).
func (that *LockedRandom) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}
