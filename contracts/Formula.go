package contracts

import "errors"

var FormulaSyntaxError = errors.New("formula syntax error")

// CellValuesGetter resolves a referenced position to its current
// value. A nil result means no cell exists at the position.
type CellValuesGetter func(pos Position) *Value

// Formula is a parsed formula expression (the text after '=').
type Formula interface {
	// Evaluate computes the formula against the given lookup. The
	// result is either a number or an error value, never a string.
	Evaluate(getter CellValuesGetter) Value

	// References lists the positions the formula reads, in source
	// order, possibly with duplicates and None sentinels for
	// undecodable cell-shaped references.
	References() []Position

	// Expression is the canonical reprint, used as the editable text
	// after a leading '='.
	Expression() string
}

type FormulaParser interface {
	// Parse compiles an expression. Failures wrap FormulaSyntaxError.
	Parse(expression string) (Formula, error)
}
