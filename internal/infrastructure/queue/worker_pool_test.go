package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolProcessesJobs(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	done := make(chan struct{}, 3)

	pool := NewWorkerPool(3, func(_ context.Context, job *Job) error {
		mu.Lock()
		seen[job.PublicID] = true
		mu.Unlock()
		done <- struct{}{}
		return nil
	})

	for _, id := range []string{"a", "b", "c"} {
		pool.AddJob(Job{Type: JobDestroyRemote, PublicID: id})
	}

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	pool.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 3)
}

func TestWorkerPoolSurvivesHandlerError(t *testing.T) {
	done := make(chan string, 2)
	pool := NewWorkerPool(1, func(_ context.Context, job *Job) error {
		done <- job.PublicID
		if job.PublicID == "bad" {
			return errors.New("handler failed")
		}
		return nil
	})

	pool.AddJob(Job{Type: JobFinishDelete, PublicID: "bad"})
	pool.AddJob(Job{Type: JobFinishDelete, PublicID: "good"})

	var order []string
	for i := 0; i < 2; i++ {
		select {
		case id := <-done:
			order = append(order, id)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
	pool.Shutdown()

	assert.Equal(t, []string{"bad", "good"}, order)
}

func TestDeserializeJob(t *testing.T) {
	job, err := DeserializeJob(`{"type":"finish_delete","public_id":"vid-1","resource_type":"video"}`)
	require.NoError(t, err)
	assert.Equal(t, JobFinishDelete, job.Type)
	assert.Equal(t, "vid-1", job.PublicID)

	_, err = DeserializeJob("not json")
	assert.Error(t, err)
}
