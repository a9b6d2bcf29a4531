package campaign

import (
	"strings"
	"text/template"

	"github.com/Abraxas-365/mailbatch/pkg/dispatch"
	"github.com/Abraxas-365/mailbatch/pkg/errx"
)

// IsStoreManager reports whether a raw first-name field denotes a French
// store-manager group mailbox. The match is a case-sensitive substring test.
func IsStoreManager(firstName string) bool {
	return strings.Contains(firstName, StoreManagerMarker)
}

type compiled struct {
	subject *template.Template
	body    *template.Template
	group   *template.Template
}

// Generator renders dispatch jobs from recipients. It holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	tables *Tables
	langs  map[Language]compiled
}

// NewGenerator validates t and parses its templates. t must not be modified
// afterwards.
func NewGenerator(t *Tables) (*Generator, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{tables: t, langs: make(map[Language]compiled)}
	for _, lang := range t.Languages() {
		var c compiled
		var err error

		if c.subject, err = parse(lang, "subject", t.Subjects[lang]); err != nil {
			return nil, err
		}
		if c.body, err = parse(lang, "body", t.Bodies[lang]); err != nil {
			return nil, err
		}
		if src, ok := t.GroupBodies[lang]; ok {
			if c.group, err = parse(lang, "group_body", src); err != nil {
				return nil, err
			}
		}
		g.langs[lang] = c
	}
	return g, nil
}

func parse(lang Language, part, src string) (*template.Template, error) {
	tmpl, err := template.New(string(lang) + "/" + part).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, campaignErrors.NewWithCause(ErrInvalidTables, err).
			WithDetail("language", string(lang)).
			WithDetail("template", part)
	}
	return tmpl, nil
}

// Tables returns the tables the generator was built from.
func (g *Generator) Tables() *Tables {
	return g.tables
}

// Generate renders the job for r.
func (g *Generator) Generate(r Recipient) (dispatch.Job, error) {
	address := strings.TrimSpace(r.Address)
	if address == "" {
		return dispatch.Job{}, campaignErrors.New(ErrMissingAddress).WithDetail("row", r.Row)
	}

	lang, err := g.tables.ParseLanguage(r.Language)
	if err != nil {
		var e *errx.Error
		if errx.As(err, &e) {
			e.WithDetail("address", address).WithDetail("row", r.Row)
		}
		return dispatch.Job{}, err
	}
	c := g.langs[lang]

	data := TemplateData{
		Salutation: g.salutation(Salutation(strings.TrimSpace(r.Salutation)), lang),
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Address:    address,
		Vars:       g.tables.Vars,
	}

	body := c.body
	if c.group != nil && g.isGroup(lang, r.FirstName) {
		body = c.group
	}

	subject, err := render(c.subject, data)
	if err != nil {
		return dispatch.Job{}, renderError(err, lang, address, r.Row)
	}
	text, err := render(body, data)
	if err != nil {
		return dispatch.Job{}, renderError(err, lang, address, r.Row)
	}

	return dispatch.Job{Address: address, Subject: subject, Body: text}, nil
}

// GenerateAll renders jobs for rs in order. A recipient that fails is
// returned as a Rejection and does not affect the others.
func (g *Generator) GenerateAll(rs []Recipient) ([]dispatch.Job, []Rejection) {
	jobs := make([]dispatch.Job, 0, len(rs))
	var rejected []Rejection

	for _, r := range rs {
		job, err := g.Generate(r)
		if err != nil {
			rejected = append(rejected, Rejection{Row: r.Row, Address: r.Address, Err: err})
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, rejected
}

// salutation resolves code for lang, using the fallback code when code or its
// phrase for lang is unknown.
func (g *Generator) salutation(code Salutation, lang Language) string {
	if phrases, ok := g.tables.Salutations[code]; ok {
		if phrase, ok := phrases[lang]; ok {
			return phrase
		}
	}
	return g.tables.Salutations[g.tables.Fallback][lang]
}

func (g *Generator) isGroup(lang Language, firstName string) bool {
	marker := g.tables.GroupMarkers[lang]
	return marker != "" && strings.Contains(firstName, marker)
}

func render(tmpl *template.Template, data TemplateData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderError(err error, lang Language, address string, row int) error {
	return campaignErrors.NewWithCause(ErrRenderFailed, err).
		WithDetail("language", string(lang)).
		WithDetail("address", address).
		WithDetail("row", row)
}
