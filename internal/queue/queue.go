package queue

import (
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueuePost schedules a deferred publish of the post at its scheduled
// time. Only platforms whose credentials are resolved server side get
// enqueued; the others wait for an interactive publish.
func EnqueuePost(asynqClient *asynq.Client, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	log.Printf("Publish task scheduled: %+v", payload)
	return nil
}
