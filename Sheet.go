package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

// Sheet owns the sparse position-to-cell mapping and is the only
// entry point for mutations. A rejected mutation leaves the mapping
// untouched: parse and cycle checks run before any state changes.
type Sheet struct {
	parser    contracts.FormulaParser
	cells     map[contracts.Position]*Cell
	printSize contracts.Size
}

func NewSheet(parser contracts.FormulaParser) *Sheet {
	return &Sheet{
		parser: parser,
		cells:  map[contracts.Position]*Cell{},
	}
}

func (s *Sheet) SetCell(pos contracts.Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("(%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	content, rawRefs, err := s.parseContent(text)
	if err != nil {
		return err
	}

	newRefs := sortAndDeduplicateRefs(rawRefs)
	for _, ref := range newRefs {
		if ref == pos {
			return fmt.Errorf("%s references itself: %w", pos, contracts.CircularDependencyError)
		}
	}

	if err = s.checkCircularDependency(newRefs, pos); err != nil {
		return err
	}

	// The mutation is committed from here on.
	for _, ref := range newRefs {
		if _, ok := s.cells[ref]; !ok {
			s.cells[ref] = newCell(s)
		}
	}

	cell, ok := s.cells[pos]
	if !ok {
		cell = newCell(s)
		s.cells[pos] = cell
	}

	s.rewireReferences(cell, cell.refs, newRefs)
	cell.Set(content, newRefs)
	cell.InvalidateCache()
	s.updatePrintableSize()

	return nil
}

func (s *Sheet) GetCell(pos contracts.Position) (contracts.CellReader, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("(%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	cell, ok := s.cells[pos]
	if !ok || cell.isEmpty() {
		return nil, nil
	}
	return cell, nil
}

func (s *Sheet) ClearCell(pos contracts.Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("(%d, %d): %w", pos.Row, pos.Col, contracts.InvalidPositionError)
	}

	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}

	for _, ref := range cell.refs {
		if referenced, exists := s.cells[ref]; exists {
			referenced.RemoveDependent(cell)
		}
	}

	cell.Set(emptyContent{}, nil)
	cell.InvalidateCache()

	// The empty placeholder stays while anything still references it,
	// so dependants keep a live edge and read the cell as empty.
	if len(cell.dependents) == 0 {
		delete(s.cells, pos)
	}

	s.updatePrintableSize()
	return nil
}

func (s *Sheet) GetPrintableSize() contracts.Size {
	return s.printSize
}

func (s *Sheet) PrintValues(out io.Writer) error {
	return s.print(out, func(cell *Cell) string {
		return cell.GetValue().String()
	})
}

func (s *Sheet) PrintTexts(out io.Writer) error {
	return s.print(out, func(cell *Cell) string {
		return cell.GetText()
	})
}

func (s *Sheet) print(out io.Writer, render func(*Cell) string) error {
	var line strings.Builder
	for row := 0; row < s.printSize.Rows; row++ {
		line.Reset()
		for col := 0; col < s.printSize.Cols; col++ {
			if col > 0 {
				line.WriteByte('\t')
			}
			if cell, ok := s.cells[contracts.Position{Row: row, Col: col}]; ok {
				line.WriteString(render(cell))
			}
		}
		line.WriteByte('\n')

		if _, err := io.WriteString(out, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// parseContent maps incoming text to a content variant. Formula text
// is parsed up front so a syntax failure rejects the whole mutation.
func (s *Sheet) parseContent(text string) (cellContent, []contracts.Position, error) {
	if text == "" {
		return emptyContent{}, nil, nil
	}

	if !isFormulaText(text) {
		return textContent{text: text}, nil, nil
	}

	formula, err := s.parser.Parse(text[1:])
	if err != nil {
		return nil, nil, err
	}

	return &formulaContent{formula: formula, sheet: s}, formula.References(), nil
}

// checkCircularDependency walks outbound references of the current
// graph from every new reference; reaching target means the proposed
// edge set would close a cycle. The new cell's own edges are not yet
// installed, so the walk sees the pre-mutation graph.
func (s *Sheet) checkCircularDependency(refs []contracts.Position, target contracts.Position) error {
	visited := map[*Cell]struct{}{}

	var visit func(pos contracts.Position) bool
	visit = func(pos contracts.Position) bool {
		if pos == target {
			return true
		}

		cell, ok := s.cells[pos]
		if !ok {
			return false
		}
		if _, seen := visited[cell]; seen {
			return false
		}
		visited[cell] = struct{}{}

		for _, ref := range cell.refs {
			if visit(ref) {
				return true
			}
		}
		return false
	}

	for _, ref := range refs {
		if visit(ref) {
			return fmt.Errorf("%s is reachable from %s: %w", target, ref, contracts.CircularDependencyError)
		}
	}
	return nil
}

// rewireReferences updates inbound dependent sets by set difference
// between the old and new outbound references.
func (s *Sheet) rewireReferences(cell *Cell, oldRefs []contracts.Position, newRefs []contracts.Position) {
	newSet := make(map[contracts.Position]struct{}, len(newRefs))
	for _, ref := range newRefs {
		newSet[ref] = struct{}{}
	}

	oldSet := make(map[contracts.Position]struct{}, len(oldRefs))
	for _, ref := range oldRefs {
		oldSet[ref] = struct{}{}
		if _, keep := newSet[ref]; !keep {
			if referenced, ok := s.cells[ref]; ok {
				referenced.RemoveDependent(cell)
			}
		}
	}

	for _, ref := range newRefs {
		if _, kept := oldSet[ref]; !kept {
			s.cells[ref].AddDependent(cell)
		}
	}
}

func (s *Sheet) updatePrintableSize() {
	s.printSize = contracts.Size{}
	for pos, cell := range s.cells {
		if cell.isEmpty() {
			continue
		}
		if pos.Row >= s.printSize.Rows {
			s.printSize.Rows = pos.Row + 1
		}
		if pos.Col >= s.printSize.Cols {
			s.printSize.Cols = pos.Col + 1
		}
	}
}

// cellValuesGetter is the read side handed to formula evaluation.
// Values resolve through Cell.GetValue, so nested formulas memoise.
func (s *Sheet) cellValuesGetter() contracts.CellValuesGetter {
	return func(pos contracts.Position) *contracts.Value {
		cell, ok := s.cells[pos]
		if !ok {
			return nil
		}

		value := cell.GetValue()
		return &value
	}
}

// sortAndDeduplicateRefs keeps valid positions only, ascending and
// unique. Undecodable sentinels stay inside the formula and surface
// as #REF! at evaluation.
func sortAndDeduplicateRefs(rawRefs []contracts.Position) []contracts.Position {
	refs := make([]contracts.Position, 0, len(rawRefs))
	for _, ref := range rawRefs {
		if ref.IsValid() {
			refs = append(refs, ref)
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Less(refs[j])
	})

	deduplicated := refs[:0]
	for _, ref := range refs {
		if len(deduplicated) == 0 || deduplicated[len(deduplicated)-1] != ref {
			deduplicated = append(deduplicated, ref)
		}
	}
	return deduplicated
}
