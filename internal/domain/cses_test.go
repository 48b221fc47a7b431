package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCSESProgress_Invariants_SolvedWithinTotal property-tests that any
// sequence of counter operations keeps 0 <= solved <= total.
func TestCSESProgress_Invariants_SolvedWithinTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		p := CSESProgress{Total: rng.Intn(10), Initialized: true}
		for step := 0; step < 50; step++ {
			switch rng.Intn(4) {
			case 0:
				p.Increment()
			case 1:
				p.Decrement()
			case 2:
				p.Reset()
			default:
				p.SetSolved(rng.Intn(30) - 10)
			}
			assert.GreaterOrEqual(t, p.Solved, 0, "trial %d step %d", trial, step)
			assert.LessOrEqual(t, p.Solved, p.Total, "trial %d step %d", trial, step)
		}
	}
}

func TestCSESProgress_Percent(t *testing.T) {
	assert.Equal(t, 0, CSESProgress{Solved: 0, Total: 400}.Percent())
	assert.Equal(t, 25, CSESProgress{Solved: 100, Total: 400}.Percent())
	assert.Equal(t, 1, CSESProgress{Solved: 2, Total: 400}.Percent())
	assert.Equal(t, 0, CSESProgress{Solved: 3, Total: 0}.Percent())
}

func TestCSESProblem_ToggleAndCount(t *testing.T) {
	problems := []CSESProblem{
		{ID: 1, Name: "Weird Algorithm", Category: "Introductory", Status: StatusUnsolved},
		{ID: 2, Name: "Missing Number", Category: "Introductory", Status: StatusSolved},
	}
	problems[0].ToggleStatus()
	assert.Equal(t, StatusSolved, problems[0].Status)
	assert.Equal(t, 2, CountSolved(problems))

	problems[1].ToggleStatus()
	assert.Equal(t, 1, CountSolved(problems))
}

func TestFilterCSES(t *testing.T) {
	problems := []CSESProblem{
		{ID: 1, Name: "Weird Algorithm", Category: "Introductory"},
		{ID: 2, Name: "Dice Combinations", Category: "Dynamic Programming", Notes: "classic dp"},
		{ID: 3, Name: "Coin Combinations I", Category: "Dynamic Programming"},
	}

	assert.Len(t, FilterCSES(problems, CSESFilter{}), 3)
	assert.Len(t, FilterCSES(problems, CSESFilter{Category: "Dynamic Programming"}), 2)
	assert.Len(t, FilterCSES(problems, CSESFilter{Category: "all"}), 3)

	got := FilterCSES(problems, CSESFilter{Search: "CLASSIC"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, int64(2), got[0].ID)
	}
}

func TestCourseProgress_SetCompletedClamps(t *testing.T) {
	c := CourseProgress{Total: 32}
	c.SetCompleted(40)
	assert.Equal(t, 32, c.Completed)
	c.SetCompleted(-1)
	assert.Equal(t, 0, c.Completed)
	c.SetCompleted(16)
	assert.Equal(t, 50, c.Percent())
}
