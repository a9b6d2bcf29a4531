package campaign_test

import (
	"strings"
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/campaign"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T) *campaign.Generator {
	t.Helper()
	g, err := campaign.NewGenerator(campaign.DefaultTables())
	require.NoError(t, err)
	return g
}

func TestGenerate_Languages(t *testing.T) {
	tests := []struct {
		lang        string
		salutation  string
		wantOpening string
		wantSubject string
	}{
		{"DE", "MR", "Lieber Max,\n\nich möchte euch", "Dringend: Aufschub der geplanten Änderung der URL für d.vinci"},
		{"EN", "MR", "Dear Max,\n\nI wish to inform you", "Urgent: Postponement of the Planned URL Change for d.vinci"},
		{"FR", "MR", "Cher Max,\n\nje tiens à vous informer", "Urgent: Report de la modification prévue de l'URL pour d.vinci"},
		{"NL", "MR", "Beste Max,\n\nIk wil jullie informeren", "Dringend: Uitstel van de geplande URL-wijziging voor d.vinci"},
		{"DE", "MS", "Liebe Max,", "Dringend: Aufschub der geplanten Änderung der URL für d.vinci"},
		{"FR", "MS", "Chère Max,", "Urgent: Report de la modification prévue de l'URL pour d.vinci"},
	}
	g := newGenerator(t)

	for _, tt := range tests {
		t.Run(tt.lang+"_"+tt.salutation, func(t *testing.T) {
			job, err := g.Generate(campaign.Recipient{
				Address:    "max@example.com",
				FirstName:  "Max",
				Language:   tt.lang,
				Salutation: tt.salutation,
				Row:        2,
			})
			require.NoError(t, err)

			assert.Equal(t, "max@example.com", job.Address)
			assert.Equal(t, tt.wantSubject, job.Subject)
			assert.True(t, strings.HasPrefix(job.Body, tt.wantOpening), job.Body)
			assert.Contains(t, job.Body, "08.03.2024")
			assert.Contains(t, job.Body, "[application.takko.com]")
			assert.Contains(t, job.Body, ">>> job.takko.com <<<")
			assert.True(t, strings.HasSuffix(job.Body, "\nHendrik Siemens"))
			assert.NotContains(t, job.Body, "{{")
		})
	}
}

func TestGenerate_LowercaseLanguageMatchesUppercase(t *testing.T) {
	g := newGenerator(t)
	r := campaign.Recipient{Address: "a@example.com", FirstName: "Anna", Salutation: "MS"}

	r.Language = "de"
	lower, err := g.Generate(r)
	require.NoError(t, err)

	r.Language = "DE"
	upper, err := g.Generate(r)
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestGenerate_UnknownSalutationFallsBack(t *testing.T) {
	g := newGenerator(t)

	for _, code := range []string{"DR", "", "mr"} {
		t.Run("code_"+code, func(t *testing.T) {
			de, err := g.Generate(campaign.Recipient{Address: "k@example.com", FirstName: "Kim", Language: "DE", Salutation: code})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(de.Body, "Liebe(r) Kim,"))

			fr, err := g.Generate(campaign.Recipient{Address: "k@example.com", FirstName: "Kim", Language: "FR", Salutation: code})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(fr.Body, "Cher(e) Kim,"))
		})
	}
}

func TestGenerate_UnsupportedLanguage(t *testing.T) {
	g := newGenerator(t)

	_, err := g.Generate(campaign.Recipient{Address: "a@example.com", Language: "ES", Row: 7})
	require.Error(t, err)
	assert.True(t, errx.Is(err, campaign.ErrUnsupportedLanguage))

	var e *errx.Error
	require.True(t, errx.As(err, &e))
	assert.Equal(t, 7, e.Detail("row"))
	assert.Equal(t, "ES", e.Detail("language"))
}

func TestGenerate_MissingAddress(t *testing.T) {
	_, err := newGenerator(t).Generate(campaign.Recipient{Address: "  ", Language: "DE"})
	assert.True(t, errx.Is(err, campaign.ErrMissingAddress))
}

func TestGenerate_FrenchStoreManagerGroupBody(t *testing.T) {
	g := newGenerator(t)

	job, err := g.Generate(campaign.Recipient{
		Address:    "store0815@example.com",
		FirstName:  "Responsable de magasin 0815",
		Language:   "FR",
		Salutation: "MR",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(job.Body, "Bonjour à tous,\n\n"))
	assert.NotContains(t, job.Body, "Cher ")
	assert.NotContains(t, job.Body, "0815")
	assert.Equal(t, "Urgent: Report de la modification prévue de l'URL pour d.vinci", job.Subject)
}

func TestGenerate_StoreManagerMarkerIgnoredOutsideFrench(t *testing.T) {
	g := newGenerator(t)

	job, err := g.Generate(campaign.Recipient{
		Address:    "store@example.com",
		FirstName:  "Responsable de magasin",
		Language:   "DE",
		Salutation: "MX",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(job.Body, "Liebe(r) Responsable de magasin,"))
}

func TestIsStoreManager(t *testing.T) {
	tests := []struct {
		firstName string
		want      bool
	}{
		{"Responsable de magasin", true},
		{"Responsable de magasin Lille", true},
		{"Equipe Responsable de magasin", true},
		{"responsable de magasin", false},
		{"Responsable", false},
		{"Marie", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, campaign.IsStoreManager(tt.firstName), tt.firstName)
	}
}

func TestGenerateAll_IsolatesRejections(t *testing.T) {
	g := newGenerator(t)
	rs := []campaign.Recipient{
		{Address: "a@example.com", FirstName: "A", Language: "EN", Salutation: "MR", Row: 2},
		{Address: "b@example.com", FirstName: "B", Language: "XX", Salutation: "MR", Row: 3},
		{Address: "c@example.com", FirstName: "C", Language: "nl", Salutation: "MS", Row: 4},
	}

	jobs, rejected := g.GenerateAll(rs)

	require.Len(t, jobs, 2)
	assert.Equal(t, "a@example.com", jobs[0].Address)
	assert.Equal(t, "c@example.com", jobs[1].Address)

	require.Len(t, rejected, 1)
	assert.Equal(t, 3, rejected[0].Row)
	assert.Equal(t, "b@example.com", rejected[0].Address)
	assert.True(t, errx.Is(rejected[0], campaign.ErrUnsupportedLanguage))
}

func TestGenerate_IsPure(t *testing.T) {
	g := newGenerator(t)
	r := campaign.Recipient{Address: "a@example.com", FirstName: "Anna", Language: "EN", Salutation: "MS"}

	first, err := g.Generate(r)
	require.NoError(t, err)
	second, err := g.Generate(r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Dear", g.Tables().Salutations[campaign.Ms][campaign.English])
}
