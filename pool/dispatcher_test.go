package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-password-utils/pool"
	"github.com/hasbyte1/go-password-utils/pwhash"
)

func TestDispatcher_HashJob(t *testing.T) {
	d := pool.NewDispatcher()
	d.Start()
	defer d.Stop()

	job := pool.HashJob{
		Password:  "password123",
		Salt:      "somesalt",
		Algorithm: "argon2i",
		Result:    make(chan pool.HashResult, 1),
	}
	require.NoError(t, d.Submit(job))

	res := <-job.Result
	require.NoError(t, res.Err)
	assert.Equal(t, pwhash.Argon2i, res.Hash.Algorithm())
	assert.Equal(t, 32, res.Hash.Length())
}

func TestDispatcher_HashJob_PropagatesErrors(t *testing.T) {
	d := pool.NewDispatcher()
	d.Start()
	defer d.Stop()

	job := pool.HashJob{
		Password:  "short",
		Salt:      "somesalt",
		Algorithm: "argon2i",
		Result:    make(chan pool.HashResult, 1),
	}
	require.NoError(t, d.Submit(job))

	res := <-job.Result
	assert.ErrorIs(t, res.Err, pwhash.ErrPasswordTooShort)
	assert.Nil(t, res.Hash)
}

func TestDispatcher_VerifyJob(t *testing.T) {
	h, err := pwhash.NewScrypt("password123", "somesalt")
	require.NoError(t, err)

	d := pool.NewDispatcher()
	d.Start()
	defer d.Stop()

	match := pool.VerifyJob{
		Hash:     h,
		Password: "password123",
		Result:   make(chan pool.VerifyResult, 1),
	}
	require.NoError(t, d.Submit(match))
	res := <-match.Result
	require.NoError(t, res.Err)
	assert.True(t, res.Match)

	mismatch := pool.VerifyJob{
		Hash:     h,
		Password: "wrongpassword",
		Result:   make(chan pool.VerifyResult, 1),
	}
	require.NoError(t, d.Submit(mismatch))
	res = <-mismatch.Result
	require.NoError(t, res.Err)
	assert.False(t, res.Match)
}

func TestDispatcher_QueueFull(t *testing.T) {
	// No workers started: the buffer fills and Submit must fail fast
	// instead of blocking.
	d := pool.NewDispatcherSize(1)

	job := pool.HashJob{
		Password:  "password123",
		Salt:      "somesalt",
		Algorithm: "argon2i",
		Result:    make(chan pool.HashResult, 1),
	}
	require.NoError(t, d.Submit(job))
	assert.ErrorIs(t, d.Submit(job), pool.ErrQueueFull)
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	const jobs = 8
	d := pool.NewDispatcherSize(jobs)
	d.Start()
	results := make(chan pool.HashResult, jobs)
	for i := 0; i < jobs; i++ {
		require.NoError(t, d.Submit(pool.HashJob{
			Password:  "password123",
			Salt:      "somesalt",
			Algorithm: "argon2i",
			Result:    results,
		}))
	}
	d.Stop()

	for i := 0; i < jobs; i++ {
		res := <-results
		require.NoError(t, res.Err)
		assert.Equal(t, 32, res.Hash.Length())
	}
}
