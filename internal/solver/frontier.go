package solver

import "github.com/vancomm/minesweeper-agent/internal/board"

// constraint requires exactly mines of the referenced component
// variables to be mines. vars index into component.cells.
type constraint struct {
	vars  []int
	mines int
}

// component is a maximal group of frontier cells connected through
// shared constraints. Components are independent: an assignment in one
// never affects probabilities in another.
type component struct {
	cells       []board.Cell
	constraints []constraint
}

// buildComponents partitions the frontier (covered neighbors of
// numbered cells) into connected components under "covered neighbors
// of a common numbered cell" adjacency, then attaches to each
// component the constraints of every numbered cell whose covered
// neighbors all fall inside it. A numbered cell whose covered
// neighbors would straddle components contributes no constraint; that
// bounded approximation is deliberate. All traversal is in row-major
// discovery order so results are reproducible.
func buildComponents(b *board.Board, k *Knowledge) []*component {
	var (
		frontier    []board.Cell
		frontierIdx = make(map[board.Cell]int)
		constrained [][]board.Cell // covered neighbors per numbered cell
		required    []int          // mines still needed per numbered cell
	)
	for _, c := range k.NumberedCells {
		covered, flagged := k.neighborBuckets(b, c)
		if len(covered) == 0 {
			continue
		}
		constrained = append(constrained, covered)
		required = append(required, k.Numbers[c]-flagged)
		for _, v := range covered {
			if _, ok := frontierIdx[v]; !ok {
				frontierIdx[v] = len(frontier)
				frontier = append(frontier, v)
			}
		}
	}
	if len(frontier) == 0 {
		return nil
	}

	adjacent := make([][]int, len(frontier))
	for _, covered := range constrained {
		for i := 0; i < len(covered); i++ {
			for j := i + 1; j < len(covered); j++ {
				a, b := frontierIdx[covered[i]], frontierIdx[covered[j]]
				adjacent[a] = append(adjacent[a], b)
				adjacent[b] = append(adjacent[b], a)
			}
		}
	}

	var (
		comps   []*component
		compOf  = make([]int, len(frontier))
		visited = make([]bool, len(frontier))
	)
	for seed := range frontier {
		if visited[seed] {
			continue
		}
		comp := &component{}
		queue := []int{seed}
		visited[seed] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			compOf[v] = len(comps)
			comp.cells = append(comp.cells, frontier[v])
			for _, w := range adjacent[v] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, comp)
	}

	for ci, covered := range constrained {
		home := compOf[frontierIdx[covered[0]]]
		straddles := false
		for _, v := range covered[1:] {
			if compOf[frontierIdx[v]] != home {
				straddles = true
				break
			}
		}
		if straddles {
			continue
		}
		comp := comps[home]
		local := make(map[board.Cell]int, len(comp.cells))
		for i, c := range comp.cells {
			local[c] = i
		}
		vars := make([]int, len(covered))
		for i, v := range covered {
			vars[i] = local[v]
		}
		comp.constraints = append(comp.constraints, constraint{
			vars:  vars,
			mines: required[ci],
		})
	}

	return comps
}
