// Package statuschart implements transition tables for entity status machines.
// Each entity kind (request, offer, order, import case) declares its own chart;
// the chart is the single source of truth for the legality of any status change
// and must be consulted before every persisted status write.
//
// Charts never cross-reference each other: cross-entity gating (for example,
// an order requiring its import case to be approved before shipment) is the
// orchestrator's job, not the chart's.
package statuschart

import (
	"fmt"
	"sort"

	"winetrade/internal/pkg/errs"
)

// State constrains chart states to string-typed enumerations.
type State interface{ ~string }

// Chart is an immutable transition table for one entity kind.
// A state with an entry mapping to an empty set is terminal;
// a state absent from the table is unknown.
type Chart[S State] struct {
	kind string
	next map[S][]S
}

// New builds a chart for the given entity kind from a map of allowed
// transitions. The map is copied; later mutation of the argument does
// not affect the chart.
func New[S State](kind string, next map[S][]S) Chart[S] {
	copied := make(map[S][]S, len(next))
	for from, tos := range next {
		copied[from] = append([]S(nil), tos...)
	}
	return Chart[S]{kind: kind, next: copied}
}

// Kind returns the entity kind this chart governs.
func (c Chart[S]) Kind() string {
	return c.kind
}

// Contains reports whether s is a state known to the chart.
func (c Chart[S]) Contains(s S) bool {
	_, ok := c.next[s]
	return ok
}

// States returns all states in the chart, sorted for deterministic output.
func (c Chart[S]) States() []S {
	states := make([]S, 0, len(c.next))
	for s := range c.next {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// AllowedNext returns the set of states reachable from s.
// Terminal and unknown states return the empty set.
func (c Chart[S]) AllowedNext(s S) []S {
	return append([]S(nil), c.next[s]...)
}

// IsTerminal reports whether s is a known state with no outgoing transitions.
func (c Chart[S]) IsTerminal(s S) bool {
	tos, ok := c.next[s]
	return ok && len(tos) == 0
}

// CanTransition reports whether the chart allows moving from one state to another.
func (c Chart[S]) CanTransition(from, to S) bool {
	for _, allowed := range c.next[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Validate checks a prospective transition. Unknown states fail with a
// value error; a known but disallowed transition fails with an
// InvalidTransitionError carrying the allowed set for caller guidance.
func (c Chart[S]) Validate(from, to S) error {
	if !c.Contains(from) {
		return errs.NewValueIsInvalidErrorWithCause(
			c.kind+" status",
			fmt.Errorf("%s is not a known status", string(from)),
		)
	}
	if !c.Contains(to) {
		return errs.NewValueIsInvalidErrorWithCause(
			c.kind+" status",
			fmt.Errorf("%s is not a known status", string(to)),
		)
	}
	if !c.CanTransition(from, to) {
		return errs.NewInvalidTransitionError(c.kind, string(from), string(to), c.allowedStrings(from))
	}
	return nil
}

func (c Chart[S]) allowedStrings(from S) []string {
	tos := c.next[from]
	allowed := make([]string, 0, len(tos))
	for _, to := range tos {
		allowed = append(allowed, string(to))
	}
	return allowed
}
