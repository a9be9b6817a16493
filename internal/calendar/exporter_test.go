package calendar

import (
	"strings"
	"testing"
	"time"

	"statusbar-backend/internal/schedule/domain"
	taskdomain "statusbar-backend/internal/task/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exportRef = time.Date(2026, 3, 20, 15, 4, 5, 0, time.UTC)

func TestBuildDocumentSingleSlot(t *testing.T) {
	slots := []*domain.ScheduleSlot{
		{
			ID:          "slot-1",
			TimeSlot:    "09:00 - 09:30",
			Title:       "Deep work",
			Category:    taskdomain.CategoryWork,
			Description: "Morning focus block",
		},
	}

	doc := BuildDocument(slots, exportRef)

	lines := strings.Split(doc, "\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "VERSION:2.0", lines[1])
	assert.Equal(t, "PRODID:-//Statusbar//AI Schedule//EN", lines[2])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.False(t, strings.HasSuffix(doc, "\n"))

	assert.Contains(t, doc, "UID:slot-1@statusbar.app")
	assert.Contains(t, doc, "DTSTAMP:20260320T150405")
	assert.Contains(t, doc, "DTSTART:20260320T090000")
	assert.Contains(t, doc, "DTEND:20260320T093000")
	assert.Contains(t, doc, "SUMMARY:Deep work (Work)")
	assert.Contains(t, doc, "DESCRIPTION:Morning focus block")
}

func TestBuildDocumentOvernightSlot(t *testing.T) {
	slots := []*domain.ScheduleSlot{
		{ID: "night", TimeSlot: "23:00 - 00:30", Title: "Night shift", Category: taskdomain.CategoryWork},
	}

	doc := BuildDocument(slots, exportRef)
	assert.Contains(t, doc, "DTSTART:20260320T230000")
	assert.Contains(t, doc, "DTEND:20260321T003000")
}

func TestBuildDocumentEmptySchedule(t *testing.T) {
	doc := BuildDocument(nil, exportRef)
	assert.Equal(t, "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//Statusbar//AI Schedule//EN\nEND:VCALENDAR", doc)
}

func TestBuildDocumentSkipsMalformedSlots(t *testing.T) {
	slots := []*domain.ScheduleSlot{
		{ID: "bad", TimeSlot: "whenever", Title: "???", Category: taskdomain.CategoryWork},
		{ID: "good", TimeSlot: "10:00 - 11:00", Title: "Fine", Category: taskdomain.CategoryStudy},
	}

	doc := BuildDocument(slots, exportRef)
	assert.NotContains(t, doc, "UID:bad@statusbar.app")
	assert.Contains(t, doc, "UID:good@statusbar.app")
	assert.Equal(t, 1, strings.Count(doc, "BEGIN:VEVENT"))
}

func TestParseTimeSlotValidation(t *testing.T) {
	_, _, err := domain.ParseTimeSlot("09:00", exportRef)
	require.Error(t, err)

	_, _, err = domain.ParseTimeSlot("25:00 - 26:00", exportRef)
	require.Error(t, err)

	start, end, err := domain.ParseTimeSlot("9:05 - 10:00", exportRef)
	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 5, start.Minute())
	assert.Equal(t, 10, end.Hour())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "statusbar-mission-2026-03-20.ics", Filename(exportRef))
}
