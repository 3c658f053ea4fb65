package queue

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// JobHandler processes a single reconcile job.
type JobHandler func(ctx context.Context, job *Job) error

// WorkerPool fans reconcile jobs out to a fixed set of workers.
type WorkerPool struct {
	JobChan chan Job
	handler JobHandler
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorkerPool(workerCount int, handler JobHandler) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		pool.wg.Add(1)
		go pool.run(i)
	}
	return pool
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.JobChan:
			if !ok {
				logrus.WithField("worker", id).Info("job channel closed")
				return
			}
			if err := p.handler(p.ctx, &job); err != nil {
				logrus.WithFields(logrus.Fields{
					"worker":    id,
					"job_type":  job.Type,
					"public_id": job.PublicID,
				}).WithError(err).Error("reconcile job failed")
			}
		case <-p.ctx.Done():
			logrus.WithField("worker", id).Info("worker stopping")
			return
		}
	}
}

func (p *WorkerPool) AddJob(job Job) {
	p.JobChan <- job
}

func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.JobChan)
	p.wg.Wait()
}
