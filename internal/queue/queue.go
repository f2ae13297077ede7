// Package queue is the outbound port for background job submission. Workers
// consuming the queues live outside this service; enqueue is fire-and-forget
// and job outcomes are never observed here.
package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Queue names shared with the external workers.
const (
	FileQueue = "fileQueue"
	UserQueue = "userQueue"
)

// Task type names shared with the external workers.
const (
	TaskImageThumbnail = "image:thumbnail"
	TaskUserWelcome    = "user:welcome"
)

// FileJob asks a worker to generate image derivatives for an uploaded file.
type FileJob struct {
	FileID string `json:"fileId,omitempty"`
	UserID string `json:"userId"`
}

// UserJob carries user-scoped work: the post-registration welcome job, and the
// degraded recovery job enqueued when an image upload fails its content write
// (no fileId exists in that case).
type UserJob struct {
	UserID string `json:"userId,omitempty"`
}

// Dispatcher submits jobs to the named work queues.
type Dispatcher interface {
	EnqueueFileJob(ctx context.Context, job FileJob) error
	EnqueueUserJob(ctx context.Context, job UserJob) error
}

// AsynqDispatcher submits jobs through a Redis-backed asynq client.
type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(opt asynq.RedisClientOpt) *AsynqDispatcher {
	return &AsynqDispatcher{client: asynq.NewClient(opt)}
}

func (d *AsynqDispatcher) EnqueueFileJob(ctx context.Context, job FileJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, asynq.NewTask(TaskImageThumbnail, payload), asynq.Queue(FileQueue))
	return err
}

func (d *AsynqDispatcher) EnqueueUserJob(ctx context.Context, job UserJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, asynq.NewTask(TaskUserWelcome, payload), asynq.Queue(UserQueue))
	return err
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}
