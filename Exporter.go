package main

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

const ExportValuesSheet = "Values"
const ExportTextsSheet = "Texts"

// SheetExporter snapshots the printable area into an xlsx workbook:
// one sheet with evaluated values, one with the editable texts.
type SheetExporter struct{}

func NewSheetExporter() *SheetExporter {
	return &SheetExporter{}
}

func (e *SheetExporter) Export(sheet contracts.Sheet, out io.Writer) error {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", ExportValuesSheet); err != nil {
		return err
	}
	if _, err := file.NewSheet(ExportTextsSheet); err != nil {
		return err
	}

	size := sheet.GetPrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			reader, err := sheet.GetCell(contracts.Position{Row: row, Col: col})
			if err != nil {
				return err
			}
			if reader == nil {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}

			value := reader.GetValue()
			if value.Kind == contracts.NumberValueKind {
				err = file.SetCellValue(ExportValuesSheet, cellName, value.Number)
			} else {
				err = file.SetCellValue(ExportValuesSheet, cellName, value.String())
			}
			if err != nil {
				return err
			}

			if err = file.SetCellValue(ExportTextsSheet, cellName, reader.GetText()); err != nil {
				return err
			}
		}
	}

	_, err := file.WriteTo(out)
	return err
}
