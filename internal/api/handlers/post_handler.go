package handlers

import (
	"log/slog"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/internal/models"
	"github.com/ghostwriterhq/scheduler/internal/queue"
	"github.com/ghostwriterhq/scheduler/internal/service"
	"github.com/ghostwriterhq/scheduler/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type PostHandler struct {
	cfg         config.Config
	s           service.ScheduleService
	AsynqClient *asynq.Client
}

func NewPostHandler(cfg config.Config, s service.ScheduleService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{cfg: cfg, s: s, AsynqClient: asynqClient}
}

func (h *PostHandler) SavePost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	var req transfer.SchedulePost
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, delay, err := h.s.Create(c.Context(), ownerID, &req)
	if err != nil {
		return errorResponse(c, err)
	}

	// Wordpress credentials live server side, so those posts can go out
	// unattended at their scheduled time. Token-gated platforms wait for
	// an interactive publish.
	if h.cfg.AutoPublish && post.Platform == models.PlatformWordpress && h.AsynqClient != nil {
		payload := queue.PublishPostPayload{
			OwnerID:  ownerID,
			PostID:   post.ID,
			Platform: post.Platform,
		}
		if err := queue.EnqueuePost(h.AsynqClient, payload, delay); err != nil {
			slog.Info(err.Error())
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post for " + post.Platform + " successfully scheduled! View on Dashboard.",
		"post":    post,
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	posts, err := h.s.List(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
	})
}

func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	var req transfer.PublishPost
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, err := h.s.Publish(c.Context(), ownerID, req.PostID, req.Platform, req.AccessToken)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)

	var req transfer.RemovePost
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := h.s.Remove(c.Context(), ownerID, req.PostID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
