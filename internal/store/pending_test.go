package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueEnqueueIsIdempotent(t *testing.T) {
	q := NewQueue(testDB(t))
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, q.Enqueue("620", now))
	require.NoError(t, q.Enqueue("620", now.Add(time.Hour)))

	n, err := q.Len()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestQueueDrainOldestFirstWithoutRemoval(t *testing.T) {
	q := NewQueue(testDB(t))
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, q.Enqueue("c", base.Add(2*time.Minute)))
	require.NoError(t, q.Enqueue("a", base))
	require.NoError(t, q.Enqueue("b", base.Add(time.Minute)))

	ids, err := q.Drain(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	// Draining is non-destructive; entries survive a crash mid-batch.
	n, err := q.Len()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestQueueRemove(t *testing.T) {
	q := NewQueue(testDB(t))
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, q.Enqueue("a", base))
	require.NoError(t, q.Enqueue("b", base.Add(time.Minute)))
	require.NoError(t, q.Remove("a"))

	ids, err := q.Drain(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestAssociationAddIsIdempotent(t *testing.T) {
	s := NewAssociationStore(testDB(t))

	require.NoError(t, s.Add("u1", "620"))
	require.NoError(t, s.Add("u1", "620"))
	require.NoError(t, s.Add("u1", "550"))

	n, err := s.CountForUser("u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
