package queue

import (
	"context"
	"sync"
)

// Recorder is an in-memory Dispatcher for tests; it records every job instead
// of submitting it.
type Recorder struct {
	mu       sync.Mutex
	fileJobs []FileJob
	userJobs []UserJob
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) EnqueueFileJob(_ context.Context, job FileJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fileJobs = append(r.fileJobs, job)
	return nil
}

func (r *Recorder) EnqueueUserJob(_ context.Context, job UserJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userJobs = append(r.userJobs, job)
	return nil
}

func (r *Recorder) FileJobs() []FileJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FileJob(nil), r.fileJobs...)
}

func (r *Recorder) UserJobs() []UserJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]UserJob(nil), r.userJobs...)
}
