package sheet

import (
    "bytes"
    "encoding/csv"
    "errors"
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/xuri/excelize/v2"
)

// Column is one product to compare: a reference listing plus competitor
// listings. PreferVAT is set for silver products, where the VAT-inclusive
// figure is the true payable price.
type Column struct {
    Product        string
    ReferenceURL   string
    CompetitorURLs []string
    PreferVAT      bool
}

// Sheet is the parsed input spreadsheet. Each column holds a product name
// in the header, an optional label cell, the reference URL, then one or
// more competitor URLs.
type Sheet struct {
    Columns []Column
}

// ErrNoColumns is returned when no column of the input yields a usable
// reference-plus-competitors set.
var ErrNoColumns = errors.New("sheet: no comparable columns")

// Load reads a CSV or XLSX input file, dispatching on the extension.
func Load(path string) (Sheet, error) {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".xlsx", ".xlsm", ".xls":
        return LoadXLSX(path)
    default:
        return LoadCSV(path)
    }
}

// LoadCSV parses a comma-separated input. Ragged rows are tolerated and a
// UTF-8 BOM is stripped.
func LoadCSV(path string) (Sheet, error) {
    b, err := os.ReadFile(path)
    if err != nil {
        return Sheet{}, err
    }
    b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
    r := csv.NewReader(bytes.NewReader(b))
    r.FieldsPerRecord = -1
    headers, err := r.Read()
    if err != nil {
        return Sheet{}, fmt.Errorf("read header: %w", err)
    }
    var rows [][]string
    for {
        rec, err := r.Read()
        if errors.Is(err, io.EOF) {
            break
        }
        if err != nil {
            return Sheet{}, fmt.Errorf("read row: %w", err)
        }
        rows = append(rows, rec)
    }
    return fromGrid(headers, rows)
}

// LoadXLSX parses the first worksheet of an Excel workbook.
func LoadXLSX(path string) (Sheet, error) {
    f, err := excelize.OpenFile(path)
    if err != nil {
        return Sheet{}, fmt.Errorf("open workbook: %w", err)
    }
    defer f.Close()

    sheets := f.GetSheetList()
    if len(sheets) == 0 {
        return Sheet{}, errors.New("workbook has no sheets")
    }
    grid, err := f.GetRows(sheets[0])
    if err != nil {
        return Sheet{}, fmt.Errorf("read rows: %w", err)
    }
    if len(grid) == 0 {
        return Sheet{}, ErrNoColumns
    }
    return fromGrid(grid[0], grid[1:])
}

// fromGrid walks each header column downward: non-URL cells directly below
// the header are labels and are skipped, the first URL is the reference,
// and the remaining URLs are competitors. Columns without a reference and
// at least one competitor are dropped.
func fromGrid(headers []string, rows [][]string) (Sheet, error) {
    var s Sheet
    for col, header := range headers {
        product := strings.TrimSpace(header)
        if product == "" {
            continue
        }
        var urls []string
        for _, row := range rows {
            if col >= len(row) {
                continue
            }
            cell := strings.TrimSpace(row[col])
            if cell == "" || !isURL(cell) {
                continue
            }
            urls = append(urls, cell)
        }
        if len(urls) < 2 {
            continue
        }
        s.Columns = append(s.Columns, Column{
            Product:        product,
            ReferenceURL:   urls[0],
            CompetitorURLs: urls[1:],
            PreferVAT:      strings.Contains(strings.ToLower(product), "silver"),
        })
    }
    if len(s.Columns) == 0 {
        return s, ErrNoColumns
    }
    return s, nil
}

func isURL(s string) bool {
    lower := strings.ToLower(s)
    return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
