package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"babynames/internal/models"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// DefaultSkipRows is the number of title and header rows above the data in
// the published workbook.
const DefaultSkipRows = 6

// LoadOptions controls how a sheet is read.
type LoadOptions struct {
	// SkipRows is the number of leading rows that are not data.
	SkipRows int

	// Sheet selects the worksheet of an xlsx file. Empty means the active sheet.
	Sheet string
}

// Load reads the sheet at path and builds a session from it. Nothing is
// returned unless every step succeeds.
func Load(path string, opts LoadOptions) (*Session, error) {
	start := time.Now()
	log.Infof("loading %s", path)

	cells, err := ReadSheet(path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, maxYear, err := ParseRows(cells, opts.SkipRows)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filepath.Base(path))
	}

	s := NewSession(rows, maxYear)
	log.Infof("load complete. rows: %d, names: %d, years: %d, last year: %d, time: %v",
		len(rows), s.Names.Len(), s.TopTen.Len(), maxYear, time.Since(start))
	return s, nil
}

// ReadSheet returns the raw cell text of every row of an .xlsx or .csv file.
func ReadSheet(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	default:
		return nil, errors.Wrapf(ErrLoadFailure, "unsupported file type %q", filepath.Ext(path))
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Op: "read", Path: path, Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, &LoadError{Op: fmt.Sprintf("read sheet %q of", sheet), Path: path, Err: err}
	}
	defer rows.Close()

	var out [][]string
	for rowNum := 1; rows.Next(); rowNum++ {
		cols, err := rows.Columns()
		if err != nil {
			return nil, &LoadError{Op: fmt.Sprintf("read sheet %q row %d of", sheet, rowNum), Path: path, Err: err}
		}
		// A rank cell saved without a cached value only carries its formula.
		if len(cols) > colRank && cols[colRank] == "" {
			cell, _ := excelize.CoordinatesToCellName(colRank+1, rowNum)
			if formula, err := f.GetCellFormula(sheet, cell); err == nil && formula != "" {
				cols[colRank] = "=" + formula
			}
		}
		out = append(out, cols)
	}
	return out, nil
}

// ParseRows skips the first skip rows of cells, normalizes the rest and
// returns them with the year of the last data row.
//
// A rank cell holding a formula takes the previous row's rank. Blank rows
// are ignored. Rows failing NormalizeRow with ErrInvalidRow are logged and
// dropped; ErrMalformedRow aborts.
func ParseRows(cells [][]string, skip int) ([]models.Row, int, error) {
	if skip < 0 {
		skip = 0
	}

	var (
		rows     []models.Row
		lastRank string
		skipped  int
	)
	for i := skip; i < len(cells); i++ {
		line := i + 1
		raw := cells[i]
		if blank(raw) {
			continue
		}
		if len(raw) < numColumns {
			return nil, 0, newRowError(line, "columns", strings.Join(raw, ","), ErrMalformedRow)
		}

		record := make([]string, len(raw))
		copy(record, raw)
		if strings.HasPrefix(strings.TrimSpace(record[colRank]), "=") {
			record[colRank] = lastRank
		}
		lastRank = record[colRank]

		row, err := NormalizeRow(line, record)
		if errors.Is(err, ErrInvalidRow) {
			log.Warnf("skipping %v", err)
			skipped++
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, 0, errors.Wrap(ErrLoadFailure, "no data rows")
	}
	if skipped > 0 {
		log.Warnf("%d rows skipped", skipped)
	}

	maxYear := rows[len(rows)-1].Year
	if maxYear < FirstYear {
		return nil, 0, errors.Wrapf(ErrLoadFailure, "last year %d is before %d", maxYear, FirstYear)
	}
	return rows, maxYear, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
