package queue

import (
	"github.com/ghostwriterhq/scheduler/internal/service"
)

// Queue holds the worker-side dependencies for deferred publishing.
type Queue struct {
	ss service.ScheduleService
}

func NewQueue(ss service.ScheduleService) *Queue {
	return &Queue{ss: ss}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	OwnerID  string `json:"owner_id"`
	PostID   string `json:"post_id"`
	Platform string `json:"platform"`
}
