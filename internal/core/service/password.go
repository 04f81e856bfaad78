package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskflow/workspace-api/internal/api/metrics"
)

const (
	// DefaultBcryptCost trades login latency against brute-force cost.
	DefaultBcryptCost = 10

	defaultHashWorkers = 8
)

// BcryptHasher implements ports.PasswordHasher over bcrypt. The salt is
// generated per call and embedded in the digest, so verification needs no
// separate salt storage.
//
// bcrypt is deliberately expensive and CPU-bound, so concurrent work is
// bounded by a fixed set of worker slots: a burst of logins saturates the
// slots instead of every scheduler thread, and unrelated requests keep
// flowing.
type BcryptHasher struct {
	cost  int
	slots chan struct{}
}

// NewBcryptHasher builds a hasher with the given cost and concurrency bound.
// Non-positive arguments fall back to DefaultBcryptCost / defaultHashWorkers.
func NewBcryptHasher(cost, maxConcurrent int) *BcryptHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultHashWorkers
	}
	return &BcryptHasher{
		cost:  cost,
		slots: make(chan struct{}, maxConcurrent),
	}
}

// Hash derives a salted digest of plaintext. It waits for a worker slot and
// honours ctx cancellation while waiting.
func (h *BcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	}()

	select {
	case h.slots <- struct{}{}:
		defer func() { <-h.slots }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. bcrypt's comparison does
// not short-circuit in a way that leaks where the inputs diverge.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	start := time.Now()
	defer func() {
		metrics.PasswordHashDuration.WithLabelValues("verify").Observe(time.Since(start).Seconds())
	}()

	h.slots <- struct{}{}
	defer func() { <-h.slots }()

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
