package domain

// CSESProgress mirrors the progress/cses document.
type CSESProgress struct {
	Solved      int  `json:"solved"`
	Total       int  `json:"total"`
	Initialized bool `json:"initialized"`
}

// Clamp forces 0 <= Solved <= Total. A negative total is treated as zero.
func (p *CSESProgress) Clamp() {
	if p.Total < 0 {
		p.Total = 0
	}
	if p.Solved > p.Total {
		p.Solved = p.Total
	}
	if p.Solved < 0 {
		p.Solved = 0
	}
}

// Increment adds one solved problem, capped at Total.
func (p *CSESProgress) Increment() {
	p.Solved++
	p.Clamp()
}

// Decrement removes one solved problem, floored at zero.
func (p *CSESProgress) Decrement() {
	p.Solved--
	p.Clamp()
}

// Reset zeroes the solved counter.
func (p *CSESProgress) Reset() {
	p.Solved = 0
}

// SetSolved replaces the counter, clamped to the valid range.
func (p *CSESProgress) SetSolved(n int) {
	p.Solved = n
	p.Clamp()
}

// Percent returns the solved share in [0, 100], rounded to the nearest integer.
func (p CSESProgress) Percent() int {
	return percent(p.Solved, p.Total)
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(done)/float64(total)*100 + 0.5)
}
