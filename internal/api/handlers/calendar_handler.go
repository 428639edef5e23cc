package handlers

import (
	"time"

	"github.com/ghostwriterhq/scheduler/internal/calendar"
	"github.com/gofiber/fiber/v2"
)

type CalendarHandler struct{}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

func (h *CalendarHandler) ListSlots(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(calendar.TimeSlots())
}

func (h *CalendarHandler) MonthGrid(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month())-1)

	selected := time.Time{}
	if raw := c.Query("selected"); raw != "" {
		parsed, err := time.Parse(calendar.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "selected must be a YYYY-MM-DD date",
			})
		}
		selected = parsed
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"year":          year,
		"month":         month,
		"days_in_month": calendar.DaysInMonth(year, month),
		"first_weekday": calendar.FirstWeekday(year, month),
		"cells":         calendar.MonthGrid(year, month, now, selected),
	})
}
