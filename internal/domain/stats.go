package domain

import "time"

// TaskItem is an entry in the free-form task list document.
type TaskItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// CourseStat is a course's progress joined with its catalog entry.
type CourseStat struct {
	Spec     CourseSpec
	Progress CourseProgress
}

// DashboardStats is the summary shown on the dashboard tab.
type DashboardStats struct {
	CSES             CSESProgress
	CFSolved         int
	CFContests       int
	Courses          []CourseStat
	TodayCompleted   int
	TodayTotal       int
	Streak           int
	Theme            Theme
	CodeforcesHandle string
	LastSync         *time.Time
}

// BuildDashboard summarizes st. cses is the progress document, which carries
// the authoritative total.
func BuildDashboard(st AppState, cses CSESProgress, courses []CourseSpec, now time.Time) DashboardStats {
	stats := DashboardStats{
		CSES:             cses,
		CFSolved:         len(st.Codeforces.Problems),
		CFContests:       DistinctContests(st.Codeforces.Problems),
		Streak:           st.Routine.Streak(now),
		Theme:            st.Theme,
		CodeforcesHandle: st.Codeforces.Username,
		LastSync:         st.Codeforces.LastSync,
	}
	for _, spec := range courses {
		p, ok := st.Courses[spec.Key]
		if !ok {
			p = CourseProgress{Total: spec.Total}
		}
		stats.Courses = append(stats.Courses, CourseStat{Spec: spec, Progress: p})
	}
	today := now.UTC().Format(DateLayout)
	if day, ok := st.Routine.ByDate(today); ok {
		stats.TodayCompleted = day.CompletedCount()
		stats.TodayTotal = len(day.Tasks)
	}
	return stats
}
