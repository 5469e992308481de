package solver

// enumeration holds per-variable mine probabilities over all models of
// a component, plus instrumentation for tests. Models == 0 means the
// component's constraints are mutually inconsistent; callers skip such
// components.
type enumeration struct {
	probabilities []float64
	models        int
	pruned        int
}

// enumerate counts every assignment of mine/safe values to the
// component's variables that satisfies all of its constraints exactly.
// The search is an explicit-stack backtracker over a fixed variable
// order: a branch is abandoned as soon as some constraint has too many
// assigned mines, or too few to be completable with its unassigned
// variables.
func enumerate(comp *component) enumeration {
	n := len(comp.cells)

	// per-constraint running counters over variables assigned so far
	assigned := make([]int, len(comp.constraints))
	mines := make([]int, len(comp.constraints))

	varCons := make([][]int, n)
	for ci, con := range comp.constraints {
		for _, v := range con.vars {
			varCons[v] = append(varCons[v], ci)
		}
	}

	apply := func(v int, mine bool) {
		for _, ci := range varCons[v] {
			assigned[ci]++
			if mine {
				mines[ci]++
			}
		}
	}
	undo := func(v int, mine bool) {
		for _, ci := range varCons[v] {
			assigned[ci]--
			if mine {
				mines[ci]--
			}
		}
	}
	feasible := func() bool {
		for ci, con := range comp.constraints {
			if mines[ci] > con.mines {
				return false
			}
			if mines[ci]+len(con.vars)-assigned[ci] < con.mines {
				return false
			}
		}
		return true
	}

	var (
		value     = make([]bool, n)
		tried     = make([]int, n) // values attempted at each depth (0..2)
		mineTally = make([]int, n)
		result    enumeration
	)

	// Loop invariant: variables [0, depth) are applied to the
	// constraint counters, variable depth is not.
	depth := 0
	for depth >= 0 {
		if depth == n {
			exact := true
			for ci, con := range comp.constraints {
				if mines[ci] != con.mines {
					exact = false
					break
				}
			}
			if exact {
				result.models++
				for v := range value {
					if value[v] {
						mineTally[v]++
					}
				}
			}
			depth--
			undo(depth, value[depth])
			continue
		}
		if tried[depth] == 2 {
			tried[depth] = 0
			depth--
			if depth >= 0 {
				undo(depth, value[depth])
			}
			continue
		}
		mine := tried[depth] == 0 // mine first, then safe
		tried[depth]++
		value[depth] = mine
		apply(depth, mine)
		if feasible() {
			depth++
		} else {
			result.pruned++
			undo(depth, mine)
		}
	}

	if result.models > 0 {
		result.probabilities = make([]float64, n)
		for v := range mineTally {
			result.probabilities[v] =
				float64(mineTally[v]) / float64(result.models)
		}
	}
	return result
}
