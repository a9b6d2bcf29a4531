package roster_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/fsx"
	"github.com/Abraxas-365/mailbatch/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/mailbatch/pkg/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newReader(t *testing.T, opts ...roster.Option) (*roster.Reader, string) {
	t.Helper()
	dir := t.TempDir()
	lfs, err := fsxlocal.NewLocalFileSystem(dir)
	require.NoError(t, err)
	return roster.NewReader(lfs, opts...), dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeXLSX(t *testing.T, dir, name, sheet string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, name)))
}

func TestRead_CSV(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "list.csv",
		"Benutzername,Anrede,Vorname,Nachname,Sprache\n"+
			"anna@example.com,MS,Anna,Schmidt,de\n"+
			" max@example.com , MR ,Max,,EN\n")

	got, err := r.Read(context.Background(), "list.csv")
	require.NoError(t, err)

	assert.Empty(t, got.RowErrors)
	assert.Equal(t, []campaign.Recipient{
		{Address: "anna@example.com", Salutation: "MS", FirstName: "Anna", LastName: "Schmidt", Language: "de", Row: 2},
		{Address: "max@example.com", Salutation: "MR", FirstName: "Max", LastName: "", Language: "EN", Row: 3},
	}, got.Recipients)
}

func TestRead_CSVSemicolonAndReorderedColumns(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "list.csv",
		"\ufeffsprache;VORNAME;Benutzername;Anrede\r\n"+
			"FR;Responsable de magasin 12;store12@example.com;MX\r\n")

	got, err := r.Read(context.Background(), "list.csv")
	require.NoError(t, err)

	require.Len(t, got.Recipients, 1)
	assert.Equal(t, "store12@example.com", got.Recipients[0].Address)
	assert.Equal(t, "Responsable de magasin 12", got.Recipients[0].FirstName)
	assert.Equal(t, "FR", got.Recipients[0].Language)
}

func TestRead_RowErrorsAreSkipped(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "list.csv",
		"Benutzername,Anrede,Vorname,Sprache\n"+
			",MR,NoAddress,DE\n"+
			",,,\n"+
			"b@example.com,MS,NoLanguage,\n"+
			"c@example.com,MS,Ok,NL\n")

	got, err := r.Read(context.Background(), "list.csv")
	require.NoError(t, err)

	require.Len(t, got.Recipients, 1)
	assert.Equal(t, 5, got.Recipients[0].Row)

	require.Len(t, got.RowErrors, 2)
	assert.Equal(t, 2, got.RowErrors[0].Row)
	assert.Equal(t, 4, got.RowErrors[1].Row)
	assert.True(t, errx.Is(got.RowErrors[0], roster.ErrBlankField))

	var e *errx.Error
	require.True(t, errx.As(got.RowErrors[1].Err, &e))
	assert.Equal(t, "Sprache", e.Detail("column"))
}

func TestRead_MissingColumnIsFatal(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "list.csv", "Benutzername,Vorname\na@example.com,Anna\n")

	_, err := r.Read(context.Background(), "list.csv")
	require.Error(t, err)
	assert.True(t, errx.Is(err, roster.ErrMissingColumn))
	assert.Contains(t, err.Error(), "Anrede, Sprache")
}

func TestRead_CustomColumns(t *testing.T) {
	r, dir := newReader(t, roster.WithColumns(roster.Columns{Address: "Email", Language: "Lang"}))
	writeFile(t, dir, "list.csv", "Email,Anrede,Vorname,Lang\na@example.com,MS,Anna,EN\n")

	got, err := r.Read(context.Background(), "list.csv")
	require.NoError(t, err)
	require.Len(t, got.Recipients, 1)
	assert.Equal(t, "a@example.com", got.Recipients[0].Address)
}

func TestRead_NormalizesToNFC(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "list.csv", "Benutzername,Anrede,Vorname,Sprache\nj@example.com,MS,Jose\u0301,FR\n")

	got, err := r.Read(context.Background(), "list.csv")
	require.NoError(t, err)
	assert.Equal(t, "Jos\u00e9", got.Recipients[0].FirstName)
}

func TestRead_MissingFile(t *testing.T) {
	r, _ := newReader(t)

	_, err := r.Read(context.Background(), "absent.xlsx")
	assert.True(t, errx.Is(err, roster.ErrReadFailed))
	assert.True(t, errx.Is(err, fsx.ErrNotFound))
}

func TestRead_UnsupportedFormat(t *testing.T) {
	r, _ := newReader(t)

	_, err := r.Read(context.Background(), "list.pdf")
	assert.True(t, errx.Is(err, roster.ErrUnsupportedFormat))
}

func TestRead_XLSX(t *testing.T) {
	r, dir := newReader(t)
	writeXLSX(t, dir, "Mappe2.xlsx", "Sheet1", [][]interface{}{
		{"Benutzername", "Anrede", "Vorname", "Nachname", "Sprache"},
		{"anna@example.com", "MS", "Anna", "Schmidt", "DE"},
		{"", "MR", "Ghost", "", "EN"},
		{"luc@example.com", "MR", "Luc", "Martin", "fr"},
	})

	got, err := r.Read(context.Background(), "Mappe2.xlsx")
	require.NoError(t, err)

	require.Len(t, got.Recipients, 2)
	assert.Equal(t, "anna@example.com", got.Recipients[0].Address)
	assert.Equal(t, 2, got.Recipients[0].Row)
	assert.Equal(t, "luc@example.com", got.Recipients[1].Address)
	assert.Equal(t, 4, got.Recipients[1].Row)

	require.Len(t, got.RowErrors, 1)
	assert.Equal(t, 3, got.RowErrors[0].Row)
}

func TestRead_XLSXSheetSelection(t *testing.T) {
	r, dir := newReader(t, roster.WithSheet("Versand"))
	writeXLSX(t, dir, "book.xlsx", "Versand", [][]interface{}{
		{"Benutzername", "Anrede", "Vorname", "Sprache"},
		{"nl@example.com", "MX", "Sanne", "NL"},
	})

	got, err := r.Read(context.Background(), "book.xlsx")
	require.NoError(t, err)
	require.Len(t, got.Recipients, 1)
	assert.Equal(t, "NL", got.Recipients[0].Language)

	missing := roster.NewReader(mustLocal(t, dir), roster.WithSheet("Nope"))
	_, err = missing.Read(context.Background(), "book.xlsx")
	assert.True(t, errx.Is(err, roster.ErrSheetNotFound))
}

func TestRead_XLSXCorrupt(t *testing.T) {
	r, dir := newReader(t)
	writeFile(t, dir, "broken.xlsx", "not a zip")

	_, err := r.Read(context.Background(), "broken.xlsx")
	assert.True(t, errx.Is(err, roster.ErrMalformed))
}

func TestFromRows_NoHeader(t *testing.T) {
	_, err := roster.FromRows([][]string{{"", " "}}, roster.DefaultColumns())
	assert.True(t, errx.Is(err, roster.ErrMalformed))
}

func mustLocal(t *testing.T, dir string) fsx.FileReader {
	t.Helper()
	lfs, err := fsxlocal.NewLocalFileSystem(dir)
	require.NoError(t, err)
	return lfs
}
