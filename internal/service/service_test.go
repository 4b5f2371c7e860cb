package service

import (
	"testing"
	"time"

	"task-tracker-api/internal/auth"
	"task-tracker-api/internal/store/memory"
)

func newTestServices(t *testing.T, seed memory.Seed) (*Services, *memory.Store) {
	t.Helper()
	st := memory.New(seed)
	tokens := auth.NewTokenManager("test-secret", "test-issuer", "test-audience", time.Hour)
	return New(st, nil, tokens, Options{}), st
}

func ptr[T any](v T) *T { return &v }

// freezeNow pins the service clock for the duration of the test.
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	now = func() time.Time { return at }
	t.Cleanup(func() { now = time.Now })
}
