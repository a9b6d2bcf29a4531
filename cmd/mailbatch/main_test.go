package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quietConfig = "log:\n  level: off\n"

func setup(t *testing.T, roster string) (cfgPath, rosterPath string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "mailbatch.yaml")
	rosterPath = filepath.Join(dir, "list.csv")
	require.NoError(t, os.WriteFile(cfgPath, []byte(quietConfig), 0o600))
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o600))
	return cfgPath, rosterPath
}

func TestSend_DryRunAllSent(t *testing.T) {
	cfg, list := setup(t, "Benutzername,Anrede,Vorname,Sprache\n"+
		"a@example.com,MS,Anna,DE\n"+
		"b@example.com,MR,Ben,en\n")
	var out bytes.Buffer

	code := run(context.Background(), []string{"send", list, "-c", cfg, "--yes", "--dry-run", "--delay", "0s"}, &out)

	assert.Equal(t, errx.ExitOK, code, out.String())
	assert.Contains(t, out.String(), "Recipients: 2")
	assert.Contains(t, out.String(), "All 2 emails were sent successfully!")
}

func TestSend_RejectionsGivePartialExit(t *testing.T) {
	cfg, list := setup(t, "Benutzername,Anrede,Vorname,Sprache\n"+
		"a@example.com,MS,Anna,DE\n"+
		"x@example.com,MR,Xavier,ES\n")
	var out bytes.Buffer

	code := run(context.Background(), []string{"send", list, "-c", cfg, "--yes", "--dry-run", "--delay", "0s"}, &out)

	assert.Equal(t, errx.ExitPartial, code)
	assert.Contains(t, out.String(), "All 1 emails were sent successfully!")
	assert.Contains(t, out.String(), "1 recipients were skipped:")
	assert.Contains(t, out.String(), "x@example.com")
}

func TestSend_MissingRosterIsFatal(t *testing.T) {
	cfg, _ := setup(t, "")
	var out bytes.Buffer

	code := run(context.Background(), []string{"send", filepath.Join(t.TempDir(), "absent.csv"), "-c", cfg, "--yes"}, &out)
	assert.Equal(t, errx.ExitFatal, code)
}

func TestSend_NoSourceIsFatal(t *testing.T) {
	cfg, _ := setup(t, "")
	var out bytes.Buffer

	assert.Equal(t, errx.ExitFatal, run(context.Background(), []string{"send", "-c", cfg, "--yes"}, &out))
}

func TestPreview_PrintsBodies(t *testing.T) {
	cfg, list := setup(t, "Benutzername,Anrede,Vorname,Sprache\n"+
		"store@example.com,MX,Responsable de magasin 7,FR\n")
	var out bytes.Buffer

	code := run(context.Background(), []string{"preview", list, "-c", cfg, "--bodies"}, &out)

	require.Equal(t, errx.ExitOK, code, out.String())
	assert.Contains(t, out.String(), "Subject: Urgent: Report de la modification prévue de l'URL pour d.vinci")
	assert.Contains(t, out.String(), "Bonjour à tous,")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, errx.ExitOK, run(context.Background(), []string{"version"}, &out))
	assert.True(t, strings.HasPrefix(out.String(), "mailbatch dev"))
}
