// SPDX-License-Identifier: MIT
// Package poly: Ring, Var and Param declarations.
//
// A Ring is the append-only symbol table shared by every polynomial of one
// relaxation. Vars and Params are dense integer handles into it; two
// handles from different Rings must never meet in one expression.

package poly

import "fmt"

// Var is an indeterminate handle, valid only within the Ring that
// declared it.
type Var int

// Param is a free decision-parameter handle, valid only within the Ring
// that declared it. Params are the unknowns of the SOS program.
type Param int

// Ring declares indeterminates and decision parameters and owns their
// display names. It is append-only and not safe for concurrent mutation;
// one relaxation call owns one Ring (single-shot model).
type Ring struct {
	varNames   []string
	paramNames []string
}

// NewRing creates an empty Ring.
func NewRing() *Ring {
	return &Ring{}
}

// NewVar declares a fresh indeterminate with the given display name and
// returns its handle. Names need not be unique; handles are.
func (r *Ring) NewVar(name string) Var {
	r.varNames = append(r.varNames, name)
	return Var(len(r.varNames) - 1)
}

// NewVars declares n fresh indeterminates named prefix0..prefix(n-1).
func (r *Ring) NewVars(prefix string, n int) []Var {
	vs := make([]Var, n)
	for i := range vs {
		vs[i] = r.NewVar(fmt.Sprintf("%s%d", prefix, i))
	}
	return vs
}

// NewParam declares a fresh decision parameter and returns its handle.
func (r *Ring) NewParam(name string) Param {
	r.paramNames = append(r.paramNames, name)
	return Param(len(r.paramNames) - 1)
}

// NumVars reports how many indeterminates have been declared.
func (r *Ring) NumVars() int { return len(r.varNames) }

// NumParams reports how many decision parameters have been declared.
func (r *Ring) NumParams() int { return len(r.paramNames) }

// VarName returns the display name of v. Panics on a foreign handle
// (programmer error).
func (r *Ring) VarName(v Var) string {
	if v < 0 || int(v) >= len(r.varNames) {
		panic(fmt.Sprintf("poly: VarName(%d): handle not from this ring", v))
	}
	return r.varNames[v]
}

// ParamName returns the display name of p. Panics on a foreign handle
// (programmer error).
func (r *Ring) ParamName(p Param) string {
	if p < 0 || int(p) >= len(r.paramNames) {
		panic(fmt.Sprintf("poly: ParamName(%d): handle not from this ring", p))
	}
	return r.paramNames[p]
}

// sameRing panics unless both operands belong to r. Mixing rings is a
// programmer error per the package error policy.
func sameRing(a, b *Ring) {
	if a == nil || b == nil || a != b {
		panic("poly: ring mismatch between operands")
	}
}
