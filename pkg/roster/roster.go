// Package roster reads recipient lists from spreadsheets.
//
// The first non-empty row is the header. Columns are located by name, case
// insensitively, so their order in the sheet does not matter. Every cell is
// trimmed and NFC-normalized before use.
package roster

import (
	"context"
	"path"
	"strings"

	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/fsx"
	"golang.org/x/text/unicode/norm"
)

// Format identifies a roster file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// DetectFormat picks a format from the file extension.
func DetectFormat(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}
	return "", rosterErrors.New(ErrUnsupportedFormat).WithDetail("path", p)
}

// Columns names the header cells each recipient field is read from.
type Columns struct {
	Address    string `mapstructure:"address"`
	Salutation string `mapstructure:"salutation"`
	FirstName  string `mapstructure:"first_name"`
	LastName   string `mapstructure:"last_name"`
	Language   string `mapstructure:"language"`
}

// DefaultColumns returns the German header names of the HR export.
func DefaultColumns() Columns {
	return Columns{
		Address:    "Benutzername",
		Salutation: "Anrede",
		FirstName:  "Vorname",
		LastName:   "Nachname",
		Language:   "Sprache",
	}
}

// withDefaults fills empty names from DefaultColumns.
func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Salutation == "" {
		c.Salutation = d.Salutation
	}
	if c.FirstName == "" {
		c.FirstName = d.FirstName
	}
	if c.LastName == "" {
		c.LastName = d.LastName
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	return c
}

// RowError describes a data row that was skipped.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return e.Err.Error()
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Roster is the outcome of reading one file.
type Roster struct {
	Recipients []campaign.Recipient
	RowErrors  []RowError
}

// Options configures a Reader.
type Options struct {
	Columns Columns
	// Sheet is the XLSX worksheet to read; empty means the active sheet.
	Sheet string
	// Format overrides extension-based detection.
	Format Format
}

// Option is a functional option for configuring a Reader.
type Option func(*Options)

// WithColumns overrides header names. Empty fields keep their defaults.
func WithColumns(c Columns) Option {
	return func(o *Options) {
		o.Columns = c.withDefaults()
	}
}

// WithSheet selects the XLSX worksheet.
func WithSheet(name string) Option {
	return func(o *Options) {
		o.Sheet = name
	}
}

// WithFormat forces the file format.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.Format = f
	}
}

// Reader loads rosters through an fsx.FileReader.
type Reader struct {
	fs   fsx.FileReader
	opts Options
}

// NewReader creates a Reader over fs.
func NewReader(fs fsx.FileReader, options ...Option) *Reader {
	opts := Options{Columns: DefaultColumns()}
	for _, o := range options {
		o(&opts)
	}
	return &Reader{fs: fs, opts: opts}
}

// Read loads and parses the roster at p. A missing file, an unreadable
// file or a header lacking a required column is an error; individual bad
// rows are returned in Roster.RowErrors.
func (r *Reader) Read(ctx context.Context, p string) (*Roster, error) {
	format := r.opts.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(p); err != nil {
			return nil, err
		}
	}

	data, err := r.fs.ReadFile(ctx, p)
	if err != nil {
		return nil, rosterErrors.NewWithCause(ErrReadFailed, err).WithDetail("path", p)
	}

	var rows [][]string
	switch format {
	case FormatXLSX:
		rows, err = readXLSX(data, r.opts.Sheet)
	case FormatCSV:
		rows, err = readCSV(data)
	default:
		return nil, rosterErrors.New(ErrUnsupportedFormat).WithDetail("format", string(format))
	}
	if err != nil {
		var e *errx.Error
		if errx.As(err, &e) {
			e.WithDetail("path", p)
		}
		return nil, err
	}

	return FromRows(rows, r.opts.Columns)
}

// FromRows builds a roster from raw cell rows. rows[0] is sheet row 1.
func FromRows(rows [][]string, cols Columns) (*Roster, error) {
	cols = cols.withDefaults()

	headerAt := -1
	for i, row := range rows {
		if !blank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, rosterErrors.New(ErrMalformed).WithDetail("reason", "no header row")
	}

	idx, err := locate(rows[headerAt], cols)
	if err != nil {
		return nil, err
	}

	out := &Roster{Recipients: []campaign.Recipient{}}
	for i := headerAt + 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		rowNum := i + 1

		rec := campaign.Recipient{
			Address:    idx.cell(row, idx.address),
			Salutation: idx.cell(row, idx.salutation),
			FirstName:  idx.cell(row, idx.firstName),
			LastName:   idx.cell(row, idx.lastName),
			Language:   idx.cell(row, idx.language),
			Row:        rowNum,
		}

		switch {
		case rec.Address == "":
			out.RowErrors = append(out.RowErrors, blankField(rowNum, cols.Address))
		case rec.Language == "":
			out.RowErrors = append(out.RowErrors, blankField(rowNum, cols.Language))
		default:
			out.Recipients = append(out.Recipients, rec)
		}
	}
	return out, nil
}

type columnIndex struct {
	address, salutation, firstName, lastName, language int
}

// cell returns the normalized value at position i, or "" if the row is short
// or the column is absent.
func (c columnIndex) cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return normalize(row[i])
}

func locate(header []string, cols Columns) (columnIndex, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(normalize(h), normalize(name)) {
				return i
			}
		}
		return -1
	}

	idx := columnIndex{
		address:    find(cols.Address),
		salutation: find(cols.Salutation),
		firstName:  find(cols.FirstName),
		lastName:   find(cols.LastName),
		language:   find(cols.Language),
	}

	required := []struct {
		name string
		at   int
	}{
		{cols.Address, idx.address},
		{cols.Salutation, idx.salutation},
		{cols.FirstName, idx.firstName},
		{cols.Language, idx.language},
	}
	var missing []string
	for _, r := range required {
		if r.at < 0 {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return idx, rosterErrors.New(ErrMissingColumn).WithDetail("columns", strings.Join(missing, ", "))
	}
	return idx, nil
}

func blankField(row int, column string) RowError {
	return RowError{
		Row: row,
		Err: rosterErrors.New(ErrBlankField).WithDetail("row", row).WithDetail("column", column),
	}
}

func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(strings.TrimPrefix(s, "\ufeff")))
}

func blank(row []string) bool {
	for _, c := range row {
		if normalize(c) != "" {
			return false
		}
	}
	return true
}
