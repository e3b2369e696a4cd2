// SPDX-License-Identifier: MIT
// Package hybrid: eager configuration validation and reachability.

package hybrid

import (
	"fmt"
	"sort"
)

// Validate checks the whole configuration and returns the first defect,
// wrapped with mode/pair context around a package sentinel. It runs before
// any relaxation or solver work (fail-fast policy) and performs no
// allocation-heavy symbolic work.
//
// Check order (deterministic):
//  1. at least one mode (ErrNoModes);
//  2. per mode, ascending: len(F)==len(X), len(G)==len(X), every
//     len(G[r])==len(U), len(X0) ∈ {0, len(X)} (ErrDimensionMismatch);
//  3. per declared transition, (i,j) ascending lexicographically:
//     endpoints in range (ErrUnknownMode), declared reset length equals
//     the target state dimension, identity reset only between modes of
//     equal state dimension (ErrResetDimension).
//
// Transitions with empty guards still get their endpoints checked: a pair
// pointing at an undeclared mode is a configuration defect whether or not
// the guard is live yet.
func (s *System) Validate() error {
	if len(s.modes) == 0 {
		return ErrNoModes
	}
	for i, m := range s.modes {
		n, c := len(m.X), len(m.U)
		if len(m.F) != n {
			return fmt.Errorf("mode %d: len(F)=%d, want %d: %w", i, len(m.F), n, ErrDimensionMismatch)
		}
		if len(m.G) != n {
			return fmt.Errorf("mode %d: len(G)=%d rows, want %d: %w", i, len(m.G), n, ErrDimensionMismatch)
		}
		for r, row := range m.G {
			if len(row) != c {
				return fmt.Errorf("mode %d: len(G[%d])=%d, want %d: %w", i, r, len(row), c, ErrDimensionMismatch)
			}
		}
		if len(m.X0) != 0 && len(m.X0) != n {
			return fmt.Errorf("mode %d: len(X0)=%d, want 0 or %d: %w", i, len(m.X0), n, ErrDimensionMismatch)
		}
	}
	for _, key := range s.transitionKeys() {
		i, j := key[0], key[1]
		if i < 0 || i >= len(s.modes) || j < 0 || j >= len(s.modes) {
			return fmt.Errorf("transition (%d,%d): %w", i, j, ErrUnknownMode)
		}
		tr := s.trans[key]
		nj := len(s.modes[j].X)
		if tr.Reset != nil {
			if len(tr.Reset) != nj {
				return fmt.Errorf("transition (%d,%d): len(Reset)=%d, want %d: %w", i, j, len(tr.Reset), nj, ErrResetDimension)
			}
		} else if len(s.modes[i].X) != nj {
			return fmt.Errorf("transition (%d,%d): identity reset between dims %d and %d: %w",
				i, j, len(s.modes[i].X), nj, ErrResetDimension)
		}
	}
	return nil
}

// transitionKeys returns every declared pair in ascending lexicographic
// order, fixing the validation (and any reporting) order.
func (s *System) transitionKeys() [][2]int {
	keys := make([][2]int, 0, len(s.trans))
	for key := range s.trans {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	return keys
}

// Reachable performs a queue sweep over the live guard graph starting from
// every mode with an initial point, returning the reachable mode indices
// ascending. Modes outside the set are still relaxed, just not optimized —
// the caller may surface them as a warning.
func (s *System) Reachable() []int {
	seen := make([]bool, len(s.modes))
	var queue []int
	for i, m := range s.modes {
		if len(m.X0) > 0 {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range s.Successors(i) {
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	var out []int
	for i, ok := range seen {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
