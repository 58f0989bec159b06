// Package merge finds merge bases and classifies paths for a three-way merge.
package merge

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/store/object"
)

// CommitGetter loads commits by id.
type CommitGetter interface {
	GetCommit(id string) (*object.Commit, error)
}

// distances walks breadth-first from tip over every parent edge and records the
// minimum number of edges from tip to each reachable commit.
func distances(g CommitGetter, tip string) (map[string]int, error) {
	dist := map[string]int{tip: 0}
	queue := []string{tip}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c, err := g.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("walk history at %s: %w", id, err)
		}
		for _, p := range c.Parents {
			if p == "" {
				continue
			}
			if _, seen := dist[p]; seen {
				continue
			}
			dist[p] = dist[id] + 1
			queue = append(queue, p)
		}
	}
	return dist, nil
}

// Base returns the lowest common ancestor of a and b: the common ancestor with
// the smallest sum of distances from both tips, ties going to the smaller id.
// It returns "" when the histories share no commit.
func Base(g CommitGetter, a, b string) (string, error) {
	if a == b {
		return a, nil
	}
	da, err := distances(g, a)
	if err != nil {
		return "", err
	}
	db, err := distances(g, b)
	if err != nil {
		return "", err
	}

	best, bestSum := "", -1
	for id, x := range da {
		y, ok := db[id]
		if !ok {
			continue
		}
		sum := x + y
		if bestSum < 0 || sum < bestSum || (sum == bestSum && id < best) {
			best, bestSum = id, sum
		}
	}
	return best, nil
}
