package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/spindle/pkg/adapters/redis"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
	"github.com/aretw0/spindle/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	tests.RunOutcomeStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	outcome := &machine.Outcome{
		Verdict:    machine.Reject,
		FinalState: "reject",
		Steps:      3,
		Halted:     true,
		Tape:       "1_",
	}

	require.NoError(t, store.Save(ctx, "key-ttl", outcome))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, "key-ttl")

	// Fast-forward miniredis past the TTL.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "key-ttl")
	assert.ErrorIs(t, err, ports.ErrOutcomeNotFound)

	// Index pruning relies on wall-clock time passing the stored score.
	time.Sleep(1200 * time.Millisecond)

	keys, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	outcome := &machine.Outcome{Verdict: machine.Accept, FinalState: "accept", Halted: true}
	require.NoError(t, store.Save(ctx, "k", outcome))

	assert.True(t, mr.Exists("custom:k"))
}
