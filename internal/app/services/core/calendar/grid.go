package calendar

import (
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

// gridCells is the fixed month-view size: 6 rows of 7 columns,
// Sunday-first. Every month fits, whatever weekday it starts on.
const gridCells = 42

// buildMonthGrid projects a month onto the 42-cell grid. Leading and
// trailing cells are filler days of the neighbouring months: marked not
// current, never today, and left inert by the overlay pass. The caller
// supplies now so the projection stays deterministic under test.
func buildMonthGrid(year int, month time.Month, now time.Time) []responses.CalendarCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	today := utils.FormatCalendarDate(now)

	cells := make([]responses.CalendarCell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		day := gridStart.AddDate(0, 0, i)
		date := utils.FormatCalendarDate(day)
		isCurrentMonth := day.Month() == month && day.Year() == year
		cells = append(cells, responses.CalendarCell{
			DayNumber:      day.Day(),
			Date:           date,
			IsCurrentMonth: isCurrentMonth,
			IsToday:        isCurrentMonth && date == today,
		})
	}
	return cells
}
