package report

import (
    "fmt"

    "github.com/xuri/excelize/v2"

    "github.com/goldcore/pricewatch/internal/compare"
)

const sheetName = "Comparison"

// WriteXLSX writes the comparison table as an Excel workbook with one
// worksheet. Numeric cells stay numeric so spreadsheet formulas work on
// the result.
func WriteXLSX(path string, rows []compare.Row) error {
    f := excelize.NewFile()
    defer f.Close()

    if err := f.SetSheetName("Sheet1", sheetName); err != nil {
        return fmt.Errorf("rename sheet: %w", err)
    }
    for col, h := range header {
        cell, err := excelize.CoordinatesToCellName(col+1, 1)
        if err != nil {
            return err
        }
        if err := f.SetCellValue(sheetName, cell, h); err != nil {
            return fmt.Errorf("write header: %w", err)
        }
    }

    for i, r := range rows {
        values := []any{r.Product, r.ReferencePrice, nil, nil, nil, r.ReferenceURL, r.CompetitorURL}
        if r.CompetitorFound {
            values[2] = r.CompetitorPrice
            values[3] = r.Difference
            values[4] = r.PercentDiff
        }
        for col, v := range values {
            if v == nil {
                continue
            }
            cell, err := excelize.CoordinatesToCellName(col+1, i+2)
            if err != nil {
                return err
            }
            if err := f.SetCellValue(sheetName, cell, v); err != nil {
                return fmt.Errorf("write row %d: %w", i+1, err)
            }
        }
    }

    if err := f.SaveAs(path); err != nil {
        return fmt.Errorf("save workbook: %w", err)
    }
    return nil
}
