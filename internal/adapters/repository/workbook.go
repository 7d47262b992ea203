package repository

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/okian/lineout/internal/domain/model"
)

// Workbook is a Backend over an xlsx file: every tab is a table whose first
// row is the header. Access to the file is serialised.
type Workbook struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewWorkbook returns a backend for the xlsx file at path. The file is opened
// on every call, so external edits are picked up by the next load.
func NewWorkbook(path string, opts ...Option) *Workbook {
	w := &Workbook{
		fs:   afero.NewOsFs(),
		path: path,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the workbook file path.
func (w *Workbook) Path() string {
	return w.path
}

// LoadTable implements Backend.LoadTable. Fully blank rows are skipped and
// cells are returned unformatted.
func (w *Workbook) LoadTable(ctx context.Context, name string) (model.Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return model.Table{}, err
	}
	xl, err := w.open()
	if err != nil {
		return model.Table{}, err
	}
	defer func() { _ = xl.Close() }()

	if err := hasSheet(xl, name); err != nil {
		return model.Table{}, err
	}
	// Raw values keep date-typed cells as serial numbers instead of the
	// sheet's locale-dependent number format; dates.Parse reads serials.
	rows, err := xl.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return model.Table{}, errors.Wrapf(err, "read sheet %q", name)
	}
	return toTable(rows), nil
}

// AppendRow implements Backend.AppendRow by writing below the last used row
// and replacing the file.
func (w *Workbook) AppendRow(ctx context.Context, name string, values []string) error {
	if len(values) == 0 {
		return ErrEmptyRow
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	xl, err := w.open()
	if err != nil {
		return err
	}
	defer func() { _ = xl.Close() }()

	if err := hasSheet(xl, name); err != nil {
		return err
	}
	// Raw values keep date-typed cells as serial numbers instead of the
	// sheet's locale-dependent number format; dates.Parse reads serials.
	rows, err := xl.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return errors.Wrapf(err, "read sheet %q", name)
	}
	if err := setRow(xl, name, len(rows)+1, values); err != nil {
		return err
	}
	return save(w.fs, w.path, xl)
}

func (w *Workbook) open() (*excelize.File, error) {
	f, err := w.fs.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrWorkbookNotFound, "%s", w.path)
		}
		return nil, errors.Wrapf(err, "open workbook %s", w.path)
	}
	defer func() { _ = f.Close() }()

	xl, err := excelize.OpenReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse workbook %s", w.path)
	}
	return xl, nil
}

// WriteWorkbook creates (or replaces) the xlsx file at path with one tab per
// sheet, in order.
func WriteWorkbook(fs afero.Fs, path string, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return errors.New("workbook needs at least one sheet")
	}
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	for i, s := range sheets {
		if i == 0 {
			if err := xl.SetSheetName(xl.GetSheetName(0), s.Name); err != nil {
				return errors.Wrapf(err, "name sheet %q", s.Name)
			}
		} else if _, err := xl.NewSheet(s.Name); err != nil {
			return errors.Wrapf(err, "create sheet %q", s.Name)
		}
		if len(s.Table.Header) > 0 {
			if err := setRow(xl, s.Name, 1, s.Table.Header); err != nil {
				return err
			}
		}
		for r, row := range s.Table.Rows {
			if err := setRow(xl, s.Name, r+2, row); err != nil {
				return err
			}
		}
	}
	xl.SetActiveSheet(0)
	return save(fs, path, xl)
}

func hasSheet(xl *excelize.File, name string) error {
	idx, err := xl.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return errors.Wrapf(ErrTableNotFound, "%q", name)
	}
	return nil
}

func setRow(xl *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "row %d", row)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := xl.SetSheetRow(sheet, cell, &cells); err != nil {
		return errors.Wrapf(err, "write row %d of %q", row, sheet)
	}
	return nil
}

// save writes to a sibling temp file and renames it over path.
func save(fs afero.Fs, path string, xl *excelize.File) error {
	buf, err := xl.WriteToBuffer()
	if err != nil {
		return errors.Wrap(err, "encode workbook")
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(fs, tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := fs.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}

// toTable splits excelize rows into header and data rows, dropping blank
// rows. GetRows already trims trailing empty cells.
func toTable(rows [][]string) model.Table {
	var t model.Table
	for i, row := range rows {
		if i == 0 {
			t.Header = row
			continue
		}
		if blank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
