package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/octobees/leads-generator/crmlookup/internal/dto"
	"github.com/octobees/leads-generator/crmlookup/internal/logger"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	timestampLayout = "20060102_150405"
	utf8BOM         = "\ufeff"
)

// ErrNothingToExport is returned when the batch produced no outcomes.
var ErrNothingToExport = errors.New("no data to export")

// FileIOError reports a failed export file write.
type FileIOError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileIOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FileIOError) Unwrap() error {
	return e.Err
}

// Result tells which files were produced.
type Result struct {
	CompaniesPath string
	// ContactsPath is empty when ContactsSkipped is set.
	ContactsPath string
	// ContactsSkipped is set when no row in the batch had a contact, so no
	// contacts file (or sheet) was created.
	ContactsSkipped bool
}

// Exporter writes the companies and contacts exports.
type Exporter struct {
	dir         string
	format      string
	phoneRegion string
	now         func() time.Time
	log         *charmlog.Logger
}

// Option configures optional behaviour.
type Option func(*Exporter)

// WithFormat selects csv (two files) or xlsx (one workbook, two sheets).
func WithFormat(format string) Option {
	return func(e *Exporter) {
		if format == FormatXLSX {
			e.format = FormatXLSX
		}
	}
}

// WithPhoneRegion enables E.164 formatting of phone columns.
func WithPhoneRegion(region string) Option {
	return func(e *Exporter) {
		e.phoneRegion = region
	}
}

// WithClock overrides the clock used for file name timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger overrides the default (discarding) logger.
func WithLogger(log *charmlog.Logger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// NewExporter writes into dir; an empty dir means the working directory.
func NewExporter(dir string, opts ...Option) *Exporter {
	if dir == "" {
		dir = "."
	}
	e := &Exporter{dir: dir, format: FormatCSV, now: time.Now, log: logger.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the companies export from outcomes and, when at least one row
// carries a contact, the contacts export from rows. A failure writing the
// companies export stops before the contacts export is attempted.
func (e *Exporter) Export(outcomes []dto.SearchOutcome, rows []dto.FlatRow) (Result, error) {
	if len(outcomes) == 0 && len(rows) == 0 {
		return Result{}, ErrNothingToExport
	}

	stamp := e.now().Format(timestampLayout)
	companies := companiesTable(outcomes, e.phoneRegion)
	var contacts [][]string
	if anyContact(rows) {
		contacts = contactsTable(rows, e.phoneRegion)
	}

	if e.format == FormatXLSX {
		return e.exportWorkbook(stamp, companies, contacts)
	}
	return e.exportCSV(stamp, companies, contacts)
}

func (e *Exporter) exportCSV(stamp string, companies, contacts [][]string) (Result, error) {
	var result Result

	companiesPath := filepath.Join(e.dir, fmt.Sprintf("salesforce_companies_%s.csv", stamp))
	if err := writeAtomic(companiesPath, func(w io.Writer) error { return writeCSV(w, companies) }); err != nil {
		return result, err
	}
	result.CompaniesPath = companiesPath
	e.log.Info("companies exported", "path", companiesPath, "records", len(companies)-1)

	if contacts == nil {
		result.ContactsSkipped = true
		e.log.Info("contacts export skipped, no contacts in batch")
		return result, nil
	}

	contactsPath := filepath.Join(e.dir, fmt.Sprintf("salesforce_contacts_%s.csv", stamp))
	if err := writeAtomic(contactsPath, func(w io.Writer) error { return writeCSV(w, contacts) }); err != nil {
		return result, err
	}
	result.ContactsPath = contactsPath
	e.log.Info("contacts exported", "path", contactsPath, "records", len(contacts)-1)
	return result, nil
}

func writeCSV(w io.Writer, records [][]string) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

// writeAtomic writes through a temp file in the target directory and renames
// it into place, so a failed write never leaves a partial file behind.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileIOError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return &FileIOError{Path: path, Err: err}
	}

	if err := write(tmp); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &FileIOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &FileIOError{Path: path, Err: err}
	}
	return nil
}

const (
	companiesSheet = "Companies"
	contactsSheet  = "Contacts"
)

func (e *Exporter) exportWorkbook(stamp string, companies, contacts [][]string) (Result, error) {
	path := filepath.Join(e.dir, fmt.Sprintf("salesforce_lookup_%s.xlsx", stamp))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), companiesSheet); err != nil {
		return Result{}, &FileIOError{Path: path, Err: err}
	}
	if err := fillSheet(f, companiesSheet, companies); err != nil {
		return Result{}, &FileIOError{Path: path, Err: err}
	}
	if contacts != nil {
		if _, err := f.NewSheet(contactsSheet); err != nil {
			return Result{}, &FileIOError{Path: path, Err: err}
		}
		if err := fillSheet(f, contactsSheet, contacts); err != nil {
			return Result{}, &FileIOError{Path: path, Err: err}
		}
	}

	if err := writeAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	}); err != nil {
		return Result{}, err
	}
	e.log.Info("workbook exported", "path", path, "companies", len(companies)-1, "contacts", max(len(contacts)-1, 0))

	result := Result{CompaniesPath: path}
	if contacts == nil {
		result.ContactsSkipped = true
	} else {
		result.ContactsPath = path
	}
	return result, nil
}

func fillSheet(f *excelize.File, sheet string, records [][]string) error {
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
