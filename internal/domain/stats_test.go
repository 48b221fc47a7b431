package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboard(t *testing.T) {
	st := DefaultState(DefaultCourses())
	st.Codeforces.Problems = []Problem{
		{ID: 1, Contest: "Contest 1350", ProblemID: "A"},
		{ID: 2, Contest: "Contest 1350", ProblemID: "B"},
		{ID: 3, Contest: "Contest 2000", ProblemID: "A"},
	}
	st.Courses["gfg"] = CourseProgress{Completed: 16, Total: 32}
	st.Routine.Put(completeN(NewRoutineDay(1, "2025-06-15", DayGrind), 4))
	st.Theme = ThemeDark

	stats := BuildDashboard(st, CSESProgress{Solved: 100, Total: 400}, DefaultCourses(), testNow)

	assert.Equal(t, 25, stats.CSES.Percent())
	assert.Equal(t, 3, stats.CFSolved)
	assert.Equal(t, 2, stats.CFContests)
	assert.Equal(t, 4, stats.TodayCompleted)
	assert.Equal(t, 5, stats.TodayTotal)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, ThemeDark, stats.Theme)

	require.Len(t, stats.Courses, 3)
	assert.Equal(t, "gfg", stats.Courses[1].Spec.Key)
	assert.Equal(t, 50, stats.Courses[1].Progress.Percent())
}

func TestBuildDashboard_MissingCourseUsesCatalogTotal(t *testing.T) {
	st := DefaultState(nil)
	stats := BuildDashboard(st, CSESProgress{Total: 400}, DefaultCourses(), testNow)

	require.Len(t, stats.Courses, 3)
	assert.Equal(t, 75, stats.Courses[2].Progress.Total)
	assert.Zero(t, stats.TodayTotal)
}

func TestAppStateClone_IsDeep(t *testing.T) {
	st := DefaultState(DefaultCourses())
	st.Codeforces.Problems = []Problem{{ID: 1, Tags: []string{"dp"}, Rating: intPtr(1500)}}
	st.Routine.Put(NewRoutineDay(1, "2025-06-15", DayRegular))

	c := st.Clone()
	c.Codeforces.Problems[0].Tags[0] = "greedy"
	*c.Codeforces.Problems[0].Rating = 900
	c.Routine.Days[0].Tasks[0].Completed = true
	c.Courses["gfg"] = CourseProgress{Completed: 1, Total: 32}

	assert.Equal(t, "dp", st.Codeforces.Problems[0].Tags[0])
	assert.Equal(t, 1500, *st.Codeforces.Problems[0].Rating)
	assert.False(t, st.Routine.Days[0].Tasks[0].Completed)
	assert.Zero(t, st.Courses["gfg"].Completed)
}

func TestProblemValidateAndFilter(t *testing.T) {
	p := Problem{Contest: "Contest 1", ProblemID: "A", ProblemName: "Theatre Square", Division: DivisionOne}
	require.NoError(t, p.Validate())

	p.Division = "Div. 9"
	assert.Error(t, p.Validate())

	problems := []Problem{
		{Contest: "Contest 1", ProblemID: "A", ProblemName: "Theatre Square", Division: DivisionOne},
		{Contest: "Contest 1350", ProblemID: "B", ProblemName: "Orac and Models", Division: DivisionEducational, Notes: "dp on divisors"},
	}
	assert.Len(t, FilterProblems(problems, ProblemFilter{Division: DivisionEducational}), 1)
	assert.Len(t, FilterProblems(problems, ProblemFilter{Index: "a"}), 1)
	assert.Len(t, FilterProblems(problems, ProblemFilter{Search: "divisors"}), 1)
	assert.Len(t, FilterProblems(problems, ProblemFilter{}), 2)
}
