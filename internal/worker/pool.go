package worker

import "sync"

// Pool runs queued jobs on a fixed set of goroutines. The practice
// service uses it to push completed-session persistence off the
// request path.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
}

func NewPool(workers, buffer int) *Pool {
	p := &Pool{jobs: make(chan func(), buffer)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

// Submit queues a job. Blocks when the buffer is full.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
}
