package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shu-ler/SpreadSheet/contracts"
	"github.com/Shu-ler/SpreadSheet/mocks"
)

func _pos(t *testing.T, label string) contracts.Position {
	t.Helper()

	pos := contracts.PositionFromString(label)
	require.True(t, pos.IsValid(), "label: %q", label)
	return pos
}

func _setCell(t *testing.T, sheet *Sheet, label string, text string) {
	t.Helper()
	require.NoError(t, sheet.SetCell(_pos(t, label), text))
}

func _getValue(t *testing.T, sheet *Sheet, label string) contracts.Value {
	t.Helper()

	reader, err := sheet.GetCell(_pos(t, label))
	require.NoError(t, err)
	require.NotNil(t, reader, "label: %q", label)
	return reader.GetValue()
}

func _getText(t *testing.T, sheet *Sheet, label string) string {
	t.Helper()

	reader, err := sheet.GetCell(_pos(t, label))
	require.NoError(t, err)
	require.NotNil(t, reader, "label: %q", label)
	return reader.GetText()
}

func _printValues(t *testing.T, sheet *Sheet) string {
	t.Helper()

	out := strings.Builder{}
	require.NoError(t, sheet.PrintValues(&out))
	return out.String()
}

func _printTexts(t *testing.T, sheet *Sheet) string {
	t.Helper()

	out := strings.Builder{}
	require.NoError(t, sheet.PrintTexts(&out))
	return out.String()
}

func TestSheet_EmptySheet(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	assert.Equal(t, contracts.Size{}, sheet.GetPrintableSize())
	assert.Equal(t, "", _printValues(t, sheet))
	assert.Equal(t, "", _printTexts(t, sheet))

	reader, err := sheet.GetCell(_pos(t, "A1"))
	assert.NoError(t, err)
	assert.Nil(t, reader)
}

func TestSheet_TextAndEscape(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "hello")
	_setCell(t, sheet, "B1", "'=notformula")

	assert.Equal(t, contracts.NewStringValue("hello"), _getValue(t, sheet, "A1"))
	assert.Equal(t, contracts.NewStringValue("=notformula"), _getValue(t, sheet, "B1"))
	assert.Equal(t, "'=notformula", _getText(t, sheet, "B1"))
	assert.Equal(t, contracts.Size{Rows: 1, Cols: 2}, sheet.GetPrintableSize())
}

func TestSheet_LoneEqualsSignIsText(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "=")

	assert.Equal(t, "=", _getText(t, sheet, "A1"))
	assert.Equal(t, contracts.NewStringValue("="), _getValue(t, sheet, "A1"))
}

func TestSheet_FormulaAndMemoisation(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "2")
	_setCell(t, sheet, "A2", "=A1+3")

	assert.Equal(t, contracts.NewNumberValue(5), _getValue(t, sheet, "A2"))
	assert.Equal(t, "=A1+3", _getText(t, sheet, "A2"))

	_setCell(t, sheet, "A1", "10")
	assert.Equal(t, contracts.NewNumberValue(13), _getValue(t, sheet, "A2"))
}

func TestSheet_SetCellErrors(t *testing.T) {
	t.Run("invalid_position", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())

		assert.ErrorIs(t, sheet.SetCell(contracts.None, "1"), contracts.InvalidPositionError)
		assert.ErrorIs(t, sheet.SetCell(contracts.Position{Row: contracts.MaxRows, Col: 0}, "1"), contracts.InvalidPositionError)

		_, err := sheet.GetCell(contracts.None)
		assert.ErrorIs(t, err, contracts.InvalidPositionError)
		assert.ErrorIs(t, sheet.ClearCell(contracts.None), contracts.InvalidPositionError)
	})

	t.Run("formula_syntax", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())

		err := sheet.SetCell(_pos(t, "A1"), "=1+")
		assert.ErrorIs(t, err, contracts.FormulaSyntaxError)

		reader, getErr := sheet.GetCell(_pos(t, "A1"))
		assert.NoError(t, getErr)
		assert.Nil(t, reader)
		assert.Equal(t, contracts.Size{}, sheet.GetPrintableSize())
	})

	t.Run("self_reference", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())

		err := sheet.SetCell(_pos(t, "A1"), "=A1+1")
		assert.ErrorIs(t, err, contracts.CircularDependencyError)

		reader, getErr := sheet.GetCell(_pos(t, "A1"))
		assert.NoError(t, getErr)
		assert.Nil(t, reader)
	})
}

func TestSheet_CycleRejectionPreservesState(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "=B1")
	_setCell(t, sheet, "B1", "=C1")

	valuesBefore := _printValues(t, sheet)
	sizeBefore := sheet.GetPrintableSize()

	err := sheet.SetCell(_pos(t, "C1"), "=A1")
	assert.ErrorIs(t, err, contracts.CircularDependencyError)

	assert.Equal(t, "=B1", _getText(t, sheet, "A1"))
	assert.Equal(t, "=C1", _getText(t, sheet, "B1"))

	// the rejected mutation did not install content at C1
	reader, getErr := sheet.GetCell(_pos(t, "C1"))
	assert.NoError(t, getErr)
	assert.Nil(t, reader)

	assert.Equal(t, sizeBefore, sheet.GetPrintableSize())
	assert.Equal(t, valuesBefore, _printValues(t, sheet))
}

func TestSheet_LongerCycleRejected(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "=B1+C1")
	_setCell(t, sheet, "B1", "=D1")
	_setCell(t, sheet, "C1", "=D1")

	err := sheet.SetCell(_pos(t, "D1"), "=A1*2")
	assert.ErrorIs(t, err, contracts.CircularDependencyError)
}

func TestSheet_DiamondInvalidation(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "1")
	_setCell(t, sheet, "B1", "=A1")
	_setCell(t, sheet, "C1", "=A1")
	_setCell(t, sheet, "D1", "=B1+C1")

	assert.Equal(t, contracts.NewNumberValue(2), _getValue(t, sheet, "D1"))

	_setCell(t, sheet, "A1", "5")
	assert.Equal(t, contracts.NewNumberValue(10), _getValue(t, sheet, "D1"))
}

func TestSheet_PrintLayout(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "1")
	_setCell(t, sheet, "C2", "=A1+1")

	assert.Equal(t, contracts.Size{Rows: 2, Cols: 3}, sheet.GetPrintableSize())
	assert.Equal(t, "1\t\t\n\t\t2\n", _printValues(t, sheet))
	assert.Equal(t, "1\t\t\n\t\t=A1+1\n", _printTexts(t, sheet))
}

func TestSheet_PrintErrorTokens(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "text")
	_setCell(t, sheet, "B1", "=A1+1")
	_setCell(t, sheet, "C1", "=1/0")

	assert.Equal(t, "text\t#VALUE!\t#ARITHM!\n", _printValues(t, sheet))
}

func TestSheet_ClearCell(t *testing.T) {
	t.Run("removes_cell_and_shrinks_printable_area", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())

		_setCell(t, sheet, "A1", "1")
		_setCell(t, sheet, "C3", "2")
		assert.Equal(t, contracts.Size{Rows: 3, Cols: 3}, sheet.GetPrintableSize())

		require.NoError(t, sheet.ClearCell(_pos(t, "C3")))
		assert.Equal(t, contracts.Size{Rows: 1, Cols: 1}, sheet.GetPrintableSize())

		reader, err := sheet.GetCell(_pos(t, "C3"))
		assert.NoError(t, err)
		assert.Nil(t, reader)
	})

	t.Run("dependants_see_an_empty_cell", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())

		_setCell(t, sheet, "A1", "5")
		_setCell(t, sheet, "B1", "=A1*2")
		assert.Equal(t, contracts.NewNumberValue(10), _getValue(t, sheet, "B1"))

		require.NoError(t, sheet.ClearCell(_pos(t, "A1")))

		assert.Equal(t, contracts.NewNumberValue(0), _getValue(t, sheet, "B1"))
		assert.Equal(t, contracts.Size{Rows: 1, Cols: 2}, sheet.GetPrintableSize())
	})

	t.Run("clearing_a_missing_cell_is_a_no_op", func(t *testing.T) {
		sheet := NewSheet(NewFormulaParser())
		assert.NoError(t, sheet.ClearCell(_pos(t, "A1")))
	})
}

func TestSheet_FormulaRewiringOnEdit(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "=B1")
	_setCell(t, sheet, "A1", "=C1")

	cellA1 := sheet.cells[_pos(t, "A1")]
	cellB1 := sheet.cells[_pos(t, "B1")]
	cellC1 := sheet.cells[_pos(t, "C1")]

	assert.Empty(t, cellB1.dependents)
	assert.Contains(t, cellC1.dependents, cellA1)
	assert.Equal(t, []contracts.Position{_pos(t, "C1")}, cellA1.GetReferencedCells())

	// B1 can now form the edge in the other direction
	_setCell(t, sheet, "B1", "=A1")
	assert.Contains(t, cellA1.dependents, cellB1)
}

func TestSheet_ReferencesAreSortedAndDeduplicated(t *testing.T) {
	posA1 := contracts.PositionFromString("A1")

	formula := mocks.NewFormula(t)
	formula.On("References").Return([]contracts.Position{
		contracts.PositionFromString("B2"),
		contracts.None,
		contracts.PositionFromString("A2"),
		contracts.PositionFromString("B2"),
		contracts.PositionFromString("B1"),
	})
	formula.On("Evaluate", mock.Anything).Return(contracts.NewNumberValue(0)).Maybe()

	parser := mocks.NewFormulaParser(t)
	parser.On("Parse", "B2+A2+B2+B1").Return(formula, nil)

	sheet := NewSheet(parser)
	require.NoError(t, sheet.SetCell(posA1, "=B2+A2+B2+B1"))

	assert.Equal(t, []contracts.Position{
		contracts.PositionFromString("B1"),
		contracts.PositionFromString("A2"),
		contracts.PositionFromString("B2"),
	}, sheet.cells[posA1].GetReferencedCells())
}

func TestSheet_ReferencedCellsAreMaterialisedButHidden(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "B2", "=A1+C3")

	// the referenced cells exist in the graph
	assert.Contains(t, sheet.cells, _pos(t, "A1"))
	assert.Contains(t, sheet.cells, _pos(t, "C3"))

	// but they are not observable and do not extend the printable area
	reader, err := sheet.GetCell(_pos(t, "C3"))
	assert.NoError(t, err)
	assert.Nil(t, reader)
	assert.Equal(t, contracts.Size{Rows: 2, Cols: 2}, sheet.GetPrintableSize())
}

func TestSheet_SetCellWithEmptyTextMakesCellEmpty(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "5")
	_setCell(t, sheet, "B1", "=A1")
	assert.Equal(t, contracts.NewNumberValue(5), _getValue(t, sheet, "B1"))

	_setCell(t, sheet, "A1", "")

	reader, err := sheet.GetCell(_pos(t, "A1"))
	assert.NoError(t, err)
	assert.Nil(t, reader)

	// the dependant was invalidated and reads the empty cell as zero
	assert.Equal(t, contracts.NewNumberValue(0), _getValue(t, sheet, "B1"))
	assert.Equal(t, contracts.Size{Rows: 1, Cols: 2}, sheet.GetPrintableSize())
}

func TestSheet_DependencyInvariants(t *testing.T) {
	sheet := NewSheet(NewFormulaParser())

	_setCell(t, sheet, "A1", "1")
	_setCell(t, sheet, "B1", "=A1+C1")
	_setCell(t, sheet, "C1", "=A1")
	_setCell(t, sheet, "B1", "=C1*2")

	for pos, cell := range sheet.cells {
		for _, ref := range cell.GetReferencedCells() {
			referenced, ok := sheet.cells[ref]
			require.True(t, ok, "%s references a missing cell %s", pos, ref)
			assert.Contains(t, referenced.dependents, cell)
		}

		for dependent := range cell.dependents {
			assert.Contains(t, dependent.GetReferencedCells(), pos)
		}
	}
}
