package auth

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// Hasher runs bcrypt with a bounded number of concurrent computations so a
// burst of logins cannot occupy every CPU.
type Hasher struct {
	cost        int
	concurrency int64
	slots       *semaphore.Weighted
}

// NewHasher returns a hasher allowing concurrency simultaneous hashes.
func NewHasher(cost, concurrency int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Hasher{cost: cost, concurrency: int64(concurrency), slots: semaphore.NewWeighted(int64(concurrency))}
}

// Hash returns the salted bcrypt hash of password.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()
	return HashPassword(password, h.cost)
}

// Compare returns ErrPasswordMismatch when password does not match hashed.
func (h *Hasher) Compare(ctx context.Context, hashed, password string) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer h.release()
	return ComparePassword(hashed, password)
}

func (h *Hasher) acquire(ctx context.Context) error {
	return h.slots.Acquire(ctx, 1)
}

func (h *Hasher) release() {
	h.slots.Release(1)
}
