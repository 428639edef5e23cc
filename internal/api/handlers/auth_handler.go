package handlers

import (
	"log/slog"

	config "github.com/ghostwriterhq/scheduler/configs"
	"github.com/ghostwriterhq/scheduler/internal/service"
	"github.com/ghostwriterhq/scheduler/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	cfg config.Config
	s   service.SessionService
}

func NewAuthHandler(cfg config.Config, s service.SessionService) *AuthHandler {
	return &AuthHandler{cfg: cfg, s: s}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.Login
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	ownerID, token, err := h.s.SignIn(req.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.s.SessionDuration().Seconds()),
		HTTPOnly: true,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id": ownerID,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:   h.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.SendStatus(fiber.StatusOK)
}
