package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil repository is the degraded store used when no database is
// configured or reachable: dedup checks report "not sent" and writes are
// dropped, so notifications keep flowing without history.

func TestNilRepositoryIsSentReturnsFalse(t *testing.T) {
	var r *Repository
	assert.False(t, r.IsSent(context.Background(), "https://hh.ru/vacancy/1"))
}

func TestNilRepositoryMarkSentIsNoOp(t *testing.T) {
	var r *Repository
	assert.NotPanics(t, func() {
		r.MarkSent(context.Background(), "https://hh.ru/vacancy/1", "title", "company")
	})
}

func TestNilRepositoryCollectStatsFails(t *testing.T) {
	var r *Repository
	stats, err := r.CollectStats(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestNilRepositoryCloseAndSchema(t *testing.T) {
	var r *Repository
	assert.NotPanics(t, func() { r.Close() })
	assert.NoError(t, r.EnsureSchema(context.Background()))
}
