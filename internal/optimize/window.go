package optimize

// LastGameweek is the final round of a standard season.
const LastGameweek = 38

// FutureGameweeks returns the ordered window of rounds to evaluate, starting
// at next and at most horizon long. The window is clipped to the final round
// and truncated just before the first upcoming wildcard round inside it: the
// squad is reset there, so rounds beyond it carry no planning signal. A
// wildcard round equal to next does not truncate. The result always contains
// at least next.
func FutureGameweeks(next, last int, wildcards []int, horizon int) []int {
	end := next + horizon - 1
	if end > last {
		end = last
	}

	for _, wc := range wildcards {
		if wc > next && wc <= end {
			end = wc - 1
		}
	}

	window := make([]int, 0, end-next+1)
	for g := next; g <= end; g++ {
		window = append(window, g)
	}
	if len(window) == 0 {
		window = append(window, next)
	}

	return window
}
