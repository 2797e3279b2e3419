package main

import (
	"strings"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

// FormulaSign marks formula text, EscapeSign suppresses
// interpretation of a text cell's leading character.
const FormulaSign = '='
const EscapeSign = '\''

// isFormulaText reports whether text is a formula: starts with '='
// and is longer than one character. A lone "=" is text.
func isFormulaText(text string) bool {
	return len(text) > 1 && text[0] == FormulaSign
}

// Cell holds one grid entry: its content variant, the memoised
// formula value, outbound references and inbound dependents. Edges
// are non-owning; the Sheet owns every cell.
type Cell struct {
	sheet      *Sheet
	content    cellContent
	cached     *contracts.Value
	refs       []contracts.Position
	dependents map[*Cell]struct{}
}

func newCell(sheet *Sheet) *Cell {
	return &Cell{
		sheet:      sheet,
		content:    emptyContent{},
		dependents: map[*Cell]struct{}{},
	}
}

// Set swaps content and outbound references. The Sheet has already
// validated acyclicity and rewired the edges.
func (c *Cell) Set(content cellContent, refs []contracts.Position) {
	c.content = content
	c.cached = nil
	c.refs = refs
}

func (c *Cell) GetText() string {
	return c.content.GetText()
}

// GetValue returns the memoised value for formula cells, evaluating
// on a cache miss; other variants answer directly.
func (c *Cell) GetValue() contracts.Value {
	if _, ok := c.content.(*formulaContent); !ok {
		return c.content.GetValue()
	}

	if c.cached == nil {
		value := c.content.GetValue()
		c.cached = &value
	}
	return *c.cached
}

func (c *Cell) GetReferencedCells() []contracts.Position {
	refs := make([]contracts.Position, len(c.refs))
	copy(refs, c.refs)
	return refs
}

// InvalidateCache drops the memoised value here and in every cell
// transitively depending on this one. The visited set keeps diamond
// shapes linear.
func (c *Cell) InvalidateCache() {
	c.invalidate(map[*Cell]struct{}{})
}

func (c *Cell) invalidate(visited map[*Cell]struct{}) {
	if _, ok := visited[c]; ok {
		return
	}
	visited[c] = struct{}{}

	c.cached = nil
	for dependent := range c.dependents {
		dependent.invalidate(visited)
	}
}

func (c *Cell) AddDependent(dependent *Cell) {
	c.dependents[dependent] = struct{}{}
}

func (c *Cell) RemoveDependent(dependent *Cell) {
	delete(c.dependents, dependent)
}

// isEmpty reports whether the cell carries no observable content.
func (c *Cell) isEmpty() bool {
	_, ok := c.content.(emptyContent)
	return ok
}

/*
 * Content variants
 */

type cellContent interface {
	GetText() string
	GetValue() contracts.Value
}

type emptyContent struct{}

func (emptyContent) GetText() string {
	return ""
}

func (emptyContent) GetValue() contracts.Value {
	return contracts.NewStringValue("")
}

type textContent struct {
	text string
}

func (t textContent) GetText() string {
	return t.text
}

// GetValue strips a single leading EscapeSign; it never reinterprets
// the text as a number, that happens at formula evaluation.
func (t textContent) GetValue() contracts.Value {
	if strings.HasPrefix(t.text, string(EscapeSign)) {
		return contracts.NewStringValue(t.text[1:])
	}
	return contracts.NewStringValue(t.text)
}

type formulaContent struct {
	formula contracts.Formula
	sheet   *Sheet
}

func (f *formulaContent) GetText() string {
	return string(FormulaSign) + f.formula.Expression()
}

func (f *formulaContent) GetValue() contracts.Value {
	return f.formula.Evaluate(f.sheet.cellValuesGetter())
}
