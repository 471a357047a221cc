package services

import (
	"sort"

	"medprep/internal/domain"
)

// cellKey identifies one (date, hour) calendar cell. A struct key rather than
// a delimited string so components containing separators cannot collide.
type cellKey struct {
	date string
	hour int
}

// TutorsFreeAt returns the ids of tutors holding an available slot at the
// given date and hour, in store iteration order.
func TutorsFreeAt(tutors []*domain.TutorSchedule, date, hour string) []string {
	var free []string
	for _, t := range tutors {
		slot := t.SlotAt(date, hour)
		if slot != nil && slot.Type == domain.SlotAvailable {
			free = append(free, t.TutorID)
		}
	}
	return free
}

// MatchStudentAvailability expands the student's availability windows into
// hour cells and pairs each cell with the tutors free at it. Cells are
// ordered by date then hour. A cell with no free tutors is still returned
// with an empty tutor list so demand with no supply stays visible.
func MatchStudentAvailability(windows []domain.StudentAvailabilitySlot, tutors []*domain.TutorSchedule) []domain.MatchCell {
	seen := make(map[cellKey]struct{})
	var keys []cellKey
	for _, w := range windows {
		if !domain.ValidDate(w.Date) {
			continue
		}
		for h := w.HourStart; h < w.HourEnd; h++ {
			if h < 0 || h > 23 {
				continue
			}
			k := cellKey{date: w.Date, hour: h}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].hour < keys[j].hour
	})

	cells := make([]domain.MatchCell, 0, len(keys))
	for _, k := range keys {
		hour := domain.HourString(k.hour)
		free := TutorsFreeAt(tutors, k.date, hour)
		if free == nil {
			free = []string{}
		}
		cells = append(cells, domain.MatchCell{Date: k.date, Hour: hour, TutorIDs: free})
	}
	return cells
}
