package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ghostwriterhq/scheduler/internal/service"
	"github.com/hibiken/asynq"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad publish payload: %v: %w", err, asynq.SkipRetry)
	}

	post, err := q.ss.Publish(ctx, payload.OwnerID, payload.PostID, payload.Platform, "")
	if err != nil {
		// A deleted or already-published post is not a task failure, and
		// failed publishes are surfaced to the user, never retried here.
		var ve *service.ValidationError
		var pe *service.PersistenceError
		if errors.As(err, &ve) || errors.As(err, &pe) {
			log.Printf("Skipping publish for post %s: %v", payload.PostID, err)
			return nil
		}
		log.Printf("Error publishing post %s: %v", payload.PostID, err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	log.Printf("Published post %s to %s", post.ID, post.Platform)
	return nil
}
