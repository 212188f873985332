package linearblock

import (
	"context"
	"sync"

	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
)

// tanner is the adjacency of the tanner graph induced by a parity check
// matrix. Check node i is node i and variable node j is node rows+j.
type tanner struct {
	rows      int
	neighbors [][]int
}

func newTanner(m mat.SparseMat) tanner {
	rows, cols := m.Dims()
	t := tanner{rows: rows, neighbors: make([][]int, rows+cols)}
	for i := 0; i < rows; i++ {
		for _, j := range m.Row(i).NonzeroArray() {
			t.neighbors[i] = append(t.neighbors[i], rows+j)
			t.neighbors[rows+j] = append(t.neighbors[rows+j], i)
		}
	}
	return t
}

// CalculateGirth calculates the girth of the tanner graph induced by m, or
// -1 when the graph has no cycles.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func CalculateGirth(ctx context.Context, m mat.SparseMat, threads int) int {
	return CalculateGirthLowerBound(ctx, m, -1, threads)
}

// CalculateGirthLowerBound returns the length of the smallest cycle no longer
// than maxGirth. If there is no such cycle it returns -1. A maxGirth of -1
// searches without limit.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func CalculateGirthLowerBound(ctx context.Context, m mat.SparseMat, maxGirth, threads int) int {
	if maxGirth != -1 && (maxGirth < 4 || maxGirth%2 != 0) {
		panic("maxGirth == -1 or maxGirth must be a even number >=4")
	}

	t := newTanner(m)
	pool := threadpool.NewFixedSize(ctx, threads, t.rows)
	calculated := -1
	mux := sync.Mutex{}
	for i := 0; i < t.rows; i++ {
		index := i
		pool.Add(func() {
			mux.Lock()
			limit := maxGirth
			if calculated != -1 {
				limit = calculated
			}
			mux.Unlock()

			g := t.shortestCycle(index, limit)

			mux.Lock()
			if g > 0 && (calculated == -1 || g < calculated) {
				calculated = g
			}
			mux.Unlock()
		})
	}
	pool.Wait()
	return calculated
}

// CalculateCycleLowerBound returns the length of the shortest cycle passing
// through check node checkIndex, considering only cycles no longer than
// maxGirth (-1 for no limit). It returns -1 if there is none.
func CalculateCycleLowerBound(m mat.SparseMat, checkIndex, maxGirth int) int {
	return newTanner(m).shortestCycle(checkIndex, maxGirth)
}

// shortestCycle runs a BFS from root. Any edge closing back onto an already
// visited node (other than the parent) closes a cycle of length
// dist(u)+dist(w)+1, and the smallest found through every root is the girth.
func (t tanner) shortestCycle(root, limit int) int {
	dist := make([]int, len(t.neighbors))
	parent := make([]int, len(t.neighbors))
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	dist[root] = 0

	best := -1
	queue := []int{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if limit != -1 && 2*dist[u] > limit {
			break
		}
		if best != -1 && 2*dist[u] >= best {
			break
		}

		for _, w := range t.neighbors[u] {
			if w == parent[u] {
				continue
			}
			if dist[w] >= 0 {
				if l := dist[u] + dist[w] + 1; best == -1 || l < best {
					best = l
				}
				continue
			}
			dist[w] = dist[u] + 1
			parent[w] = u
			queue = append(queue, w)
		}
	}

	if limit != -1 && best > limit {
		return -1
	}
	return best
}
