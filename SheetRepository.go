package main

import (
	"fmt"
	"io"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

// SheetRepository is the string-addressed facade over the engine for
// the HTTP and CLI shells. It resolves A1-style ids, renders results
// and feeds the webhook dispatcher after mutations.
type SheetRepository struct {
	sheet      contracts.Sheet
	dispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(sheet contracts.Sheet, dispatcher contracts.WebhookDispatcher) *SheetRepository {
	return &SheetRepository{
		sheet:      sheet,
		dispatcher: dispatcher,
	}
}

func (s *SheetRepository) SetCell(cellId string, value string) (*contracts.Cell, error) {
	pos, err := s.resolvePosition(cellId)
	if err != nil {
		return &contracts.Cell{Value: value}, err
	}

	if err = s.sheet.SetCell(pos, value); err != nil {
		return &contracts.Cell{Value: value}, err
	}

	cell := &contracts.Cell{Value: value, Result: s.readResult(pos)}
	s.notifySubscribers(pos)
	return cell, nil
}

func (s *SheetRepository) GetCell(cellId string) (*contracts.Cell, error) {
	pos, err := s.resolvePosition(cellId)
	if err != nil {
		return nil, err
	}

	reader, err := s.sheet.GetCell(pos)
	if err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
	}

	return &contracts.Cell{
		Value:  reader.GetText(),
		Result: reader.GetValue().String(),
	}, nil
}

func (s *SheetRepository) ClearCell(cellId string) error {
	pos, err := s.resolvePosition(cellId)
	if err != nil {
		return err
	}

	if err = s.sheet.ClearCell(pos); err != nil {
		return err
	}

	s.notifySubscribers(pos)
	return nil
}

func (s *SheetRepository) GetCellList() (*contracts.CellList, error) {
	cellList := contracts.CellList{}

	size := s.sheet.GetPrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			pos := contracts.Position{Row: row, Col: col}
			reader, err := s.sheet.GetCell(pos)
			if err != nil {
				return nil, err
			}
			if reader == nil {
				continue
			}

			cellList[pos.String()] = &contracts.Cell{
				Value:  reader.GetText(),
				Result: reader.GetValue().String(),
			}
		}
	}

	return &cellList, nil
}

func (s *SheetRepository) GetPrintableSize() contracts.Size {
	return s.sheet.GetPrintableSize()
}

func (s *SheetRepository) PrintValues(out io.Writer) error {
	return s.sheet.PrintValues(out)
}

func (s *SheetRepository) PrintTexts(out io.Writer) error {
	return s.sheet.PrintTexts(out)
}

func (s *SheetRepository) resolvePosition(cellId string) (contracts.Position, error) {
	pos := contracts.PositionFromString(cellId)
	if !pos.IsValid() {
		return pos, fmt.Errorf("cell_id `%s`: %w", cellId, contracts.InvalidPositionError)
	}
	return pos, nil
}

func (s *SheetRepository) readResult(pos contracts.Position) string {
	reader, err := s.sheet.GetCell(pos)
	if err != nil || reader == nil {
		return ""
	}
	return reader.GetValue().String()
}

// notifySubscribers hands the dispatcher the current state of every
// occupied cell plus the mutated cell itself (which may have become
// empty). The dispatcher filters by subscription and drops values
// that did not change.
func (s *SheetRepository) notifySubscribers(changed contracts.Position) {
	if s.dispatcher == nil {
		return
	}

	cellList, err := s.GetCellList()
	if err != nil {
		return
	}

	changedId := changed.String()
	updates := make([]*contracts.CellUpdate, 0, len(*cellList)+1)
	if _, ok := (*cellList)[changedId]; !ok {
		updates = append(updates, &contracts.CellUpdate{CellId: changedId})
	}

	for cellId, cell := range *cellList {
		updates = append(updates, &contracts.CellUpdate{CellId: cellId, Cell: *cell})
	}

	s.dispatcher.Notify(updates)
}
