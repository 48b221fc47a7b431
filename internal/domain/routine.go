package domain

import (
	"fmt"
	"sort"
	"time"
)

type RoutineTask struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// RoutineDay is the checklist for one calendar date. Date is unique per state.
type RoutineDay struct {
	ID    int64         `json:"id"`
	Date  string        `json:"date"`
	Type  DayType       `json:"type"`
	Tasks []RoutineTask `json:"tasks"`
}

func (d RoutineDay) clone() RoutineDay {
	out := d
	out.Tasks = append([]RoutineTask(nil), d.Tasks...)
	return out
}

// CompletedCount returns the number of completed tasks.
func (d RoutineDay) CompletedCount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

var regularTasks = []string{
	"Codeforces Problem A",
	"Codeforces Problem B",
	"2–3 CSES Problems",
	"TensorFlow / ML (1 hr)",
	"Review Log (write 1 CF trick, 1 CSES concept, 1 ML term)",
}

var grindTasks = []string{
	"Codeforces Virtual Contest",
	"Upsolve all problems",
	"4–6 CSES Problems",
	"TensorFlow Deep Session (Project / Research)",
	"Log Learnings",
}

// CanonicalTasks returns a fresh, uncompleted task list for the day type.
// Task ids are 1-based positions.
func CanonicalTasks(t DayType) []RoutineTask {
	texts := regularTasks
	if t == DayGrind {
		texts = grindTasks
	}
	tasks := make([]RoutineTask, len(texts))
	for i, text := range texts {
		tasks[i] = RoutineTask{ID: int64(i + 1), Text: text}
	}
	return tasks
}

// DayTypeFor picks grind for Friday through Sunday and regular otherwise.
func DayTypeFor(date time.Time) DayType {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return DayGrind
	default:
		return DayRegular
	}
}

// ParseDate validates a YYYY-MM-DD routine date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// NewRoutineDay builds a day with the canonical tasks for its type.
func NewRoutineDay(id int64, date string, t DayType) RoutineDay {
	return RoutineDay{ID: id, Date: date, Type: t, Tasks: CanonicalTasks(t)}
}

// Put inserts day, replacing any existing day with the same date.
func (r *RoutineState) Put(day RoutineDay) {
	kept := r.Days[:0]
	for _, d := range r.Days {
		if d.Date != day.Date {
			kept = append(kept, d)
		}
	}
	r.Days = append(kept, day)
}

// ByDate returns the day for date, if any.
func (r *RoutineState) ByDate(date string) (*RoutineDay, bool) {
	for i := range r.Days {
		if r.Days[i].Date == date {
			return &r.Days[i], true
		}
	}
	return nil, false
}

// ByID returns the day with the given id, if any.
func (r *RoutineState) ByID(id int64) (*RoutineDay, bool) {
	for i := range r.Days {
		if r.Days[i].ID == id {
			return &r.Days[i], true
		}
	}
	return nil, false
}

// Remove drops the day with the given id and reports whether it existed.
func (r *RoutineState) Remove(id int64) bool {
	kept := r.Days[:0]
	found := false
	for _, d := range r.Days {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	r.Days = kept
	return found
}

// DuplicateInto clones src's tasks into a new day on the calendar day after
// src, with completion reset and fresh task ids. Any existing day on that
// date is replaced.
func (r *RoutineState) DuplicateInto(src RoutineDay, nextID func() int64) (RoutineDay, error) {
	from, err := ParseDate(src.Date)
	if err != nil {
		return RoutineDay{}, err
	}
	day := RoutineDay{
		ID:    nextID(),
		Date:  from.AddDate(0, 0, 1).Format(DateLayout),
		Type:  src.Type,
		Tasks: make([]RoutineTask, len(src.Tasks)),
	}
	for i, t := range src.Tasks {
		day.Tasks[i] = RoutineTask{ID: nextID(), Text: t.Text}
	}
	r.Put(day)
	return day, nil
}

// ChangeType replaces the day's tasks with the canonical list for t,
// discarding completion state. It reports false when the type is unchanged.
func (d *RoutineDay) ChangeType(t DayType) bool {
	if d.Type == t {
		return false
	}
	d.Type = t
	d.Tasks = CanonicalTasks(t)
	return true
}

// ToggleTask flips a task's completion and returns its new value.
func (d *RoutineDay) ToggleTask(taskID int64) (bool, error) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == taskID {
			d.Tasks[i].Completed = !d.Tasks[i].Completed
			return d.Tasks[i].Completed, nil
		}
	}
	return false, fmt.Errorf("task %d not found on %s", taskID, d.Date)
}

// SortedDays returns the days newest first.
func (r RoutineState) SortedDays() []RoutineDay {
	days := append([]RoutineDay(nil), r.Days...)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}

// Streak counts consecutive days ending today where at least half the tasks,
// and at least one, were completed. A missing day breaks the streak.
func (r RoutineState) Streak(today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	streak := 0
	for i, d := range r.SortedDays() {
		want := day.AddDate(0, 0, -i).Format(DateLayout)
		if d.Date != want {
			break
		}
		done, total := d.CompletedCount(), len(d.Tasks)
		if done == 0 || float64(done)/float64(total) < 0.5 {
			break
		}
		streak++
	}
	return streak
}
