package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/ghostwriterhq/scheduler/internal/calendar"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarTestApp() *fiber.App {
	app := fiber.New()
	h := NewCalendarHandler()
	app.Get("/api/calendar/slots", h.ListSlots)
	app.Get("/api/calendar/grid", h.MonthGrid)
	return app
}

func TestListSlots(t *testing.T) {
	app := newCalendarTestApp()

	req, err := http.NewRequest(http.MethodGet, "/api/calendar/slots", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var slots []calendar.Slot
	require.NoError(t, json.Unmarshal(raw, &slots))
	require.Len(t, slots, 21)
	assert.Equal(t, calendar.Slot{Key: "8:00", Display: "8:00 AM"}, slots[0])
	assert.Equal(t, calendar.Slot{Key: "18:00", Display: "6:00 PM"}, slots[len(slots)-1])
}

func TestMonthGridExplicitMonth(t *testing.T) {
	app := newCalendarTestApp()

	resp, fields := doJSON(t, app, http.MethodGet, "/api/calendar/grid?year=2025&month=0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "2025", string(fields["year"]))
	assert.Equal(t, "0", string(fields["month"]))
	assert.Equal(t, "31", string(fields["days_in_month"]))
	assert.Equal(t, "3", string(fields["first_weekday"]))

	var cells []calendar.DayCell
	require.NoError(t, json.Unmarshal(fields["cells"], &cells))
	// 3 blank pad cells (Jan 1 2025 is a Wednesday) + 31 days.
	require.Len(t, cells, 34)
	assert.Zero(t, cells[0].Day)
	assert.Equal(t, 1, cells[3].Day)
	assert.Equal(t, "2025-01-01", cells[3].Date)
}

func TestMonthGridDefaultsToCurrentMonth(t *testing.T) {
	app := newCalendarTestApp()
	now := time.Now()

	resp, fields := doJSON(t, app, http.MethodGet, "/api/calendar/grid", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, fmt.Sprint(now.Year()), string(fields["year"]))
	assert.Equal(t, fmt.Sprint(int(now.Month())-1), string(fields["month"]))

	var cells []calendar.DayCell
	require.NoError(t, json.Unmarshal(fields["cells"], &cells))

	today := false
	for _, cell := range cells {
		if cell.IsToday {
			today = true
			assert.Equal(t, now.Day(), cell.Day)
		}
	}
	assert.True(t, today)
}

func TestMonthGridSelectedDay(t *testing.T) {
	app := newCalendarTestApp()

	resp, fields := doJSON(t, app, http.MethodGet, "/api/calendar/grid?year=2025&month=0&selected=2025-01-20", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cells []calendar.DayCell
	require.NoError(t, json.Unmarshal(fields["cells"], &cells))
	require.Len(t, cells, 34)
	assert.True(t, cells[3+19].IsSelected)
}

func TestMonthGridRejectsBadSelected(t *testing.T) {
	app := newCalendarTestApp()

	resp, fields := doJSON(t, app, http.MethodGet, "/api/calendar/grid?year=2025&month=0&selected=01/20/2025", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(fields["error"]), "YYYY-MM-DD")
}
