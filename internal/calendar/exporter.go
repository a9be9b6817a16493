// Package calendar encodes a schedule into an iCalendar document.
package calendar

import (
	"fmt"
	"log"
	"strings"
	"time"

	"statusbar-backend/internal/schedule/domain"
)

const icsTimeLayout = "20060102T150405"

// BuildDocument renders the slots as a VCALENDAR text document, events
// anchored to the calendar day of now. Slots whose time slot fails to parse
// are skipped and logged, never fatal: the document stays well-formed even
// when zero events are emitted.
func BuildDocument(slots []*domain.ScheduleSlot, now time.Time) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//Statusbar//AI Schedule//EN\n")

	stamp := now.Format(icsTimeLayout)
	for _, slot := range slots {
		start, end, err := domain.ParseTimeSlot(slot.TimeSlot, now)
		if err != nil {
			log.Printf("[Calendar] Skipping slot %s: %v", slot.ID, err)
			continue
		}

		b.WriteString("BEGIN:VEVENT\n")
		fmt.Fprintf(&b, "UID:%s@statusbar.app\n", slot.ID)
		fmt.Fprintf(&b, "DTSTAMP:%s\n", stamp)
		fmt.Fprintf(&b, "DTSTART:%s\n", start.Format(icsTimeLayout))
		fmt.Fprintf(&b, "DTEND:%s\n", end.Format(icsTimeLayout))
		fmt.Fprintf(&b, "SUMMARY:%s (%s)\n", slot.Title, slot.Category)
		fmt.Fprintf(&b, "DESCRIPTION:%s\n", slot.Description)
		b.WriteString("END:VEVENT\n")
	}

	b.WriteString("END:VCALENDAR")
	return b.String()
}

// Filename is the suggested download name, dated with the current day.
func Filename(now time.Time) string {
	return fmt.Sprintf("statusbar-mission-%s.ics", now.Format("2006-01-02"))
}
