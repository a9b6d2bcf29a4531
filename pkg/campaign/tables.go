package campaign

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Tables is the localization data for one campaign. Subjects, Bodies and
// GroupBodies are text/template sources executed against TemplateData.
//
// A language is supported when it has both a subject and a body. Adding a
// language is a data change.
type Tables struct {
	Subjects    map[Language]string `yaml:"subjects"`
	Bodies      map[Language]string `yaml:"bodies"`
	GroupBodies map[Language]string `yaml:"group_bodies"`

	// Salutations maps a salutation code to its phrase per language.
	Salutations map[Salutation]map[Language]string `yaml:"salutations"`

	// Fallback is the code used when a recipient's salutation is unknown.
	Fallback Salutation `yaml:"fallback"`

	// GroupMarkers selects GroupBodies: a recipient whose first-name field
	// contains the marker for their language receives the group body.
	GroupMarkers map[Language]string `yaml:"group_markers"`

	// Vars are constants shared by all templates, reachable as .Vars.name.
	Vars map[string]string `yaml:"vars"`
}

// TemplateData is the value subjects and bodies are rendered with.
type TemplateData struct {
	Salutation string
	FirstName  string
	LastName   string
	Address    string
	Vars       map[string]string
}

// tablesDocument is the YAML layout. Unless Replace is set, the document is
// laid over DefaultTables key by key.
type tablesDocument struct {
	Replace bool `yaml:"replace"`
	Tables  `yaml:",inline"`
}

// LoadTables decodes YAML tables and validates the result.
func LoadTables(data []byte) (*Tables, error) {
	var doc tablesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, campaignErrors.NewWithCause(ErrInvalidTables, err)
	}

	t := DefaultTables()
	if doc.Replace {
		t = &Tables{}
	}
	t.Merge(&doc.Tables)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Merge lays o over t. Every entry present in o wins; entries absent from o
// are kept. Language keys from o are normalized.
func (t *Tables) Merge(o *Tables) {
	t.Subjects = mergeLang(t.Subjects, o.Subjects)
	t.Bodies = mergeLang(t.Bodies, o.Bodies)
	t.GroupBodies = mergeLang(t.GroupBodies, o.GroupBodies)
	t.GroupMarkers = mergeLang(t.GroupMarkers, o.GroupMarkers)

	if len(o.Salutations) > 0 && t.Salutations == nil {
		t.Salutations = make(map[Salutation]map[Language]string, len(o.Salutations))
	}
	for code, phrases := range o.Salutations {
		t.Salutations[code] = mergeLang(t.Salutations[code], phrases)
	}

	if o.Fallback != "" {
		t.Fallback = o.Fallback
	}
	if len(o.Vars) > 0 && t.Vars == nil {
		t.Vars = make(map[string]string, len(o.Vars))
	}
	for k, v := range o.Vars {
		t.Vars[k] = v
	}
}

func mergeLang(dst, src map[Language]string) map[Language]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[Language]string, len(src))
	}
	for k, v := range src {
		dst[NormalizeLanguage(string(k))] = v
	}
	return dst
}

// Languages returns the supported languages in sorted order.
func (t *Tables) Languages() []Language {
	var langs []Language
	for lang := range t.Subjects {
		if _, ok := t.Bodies[lang]; ok {
			langs = append(langs, lang)
		}
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Supports reports whether lang has a subject and a body.
func (t *Tables) Supports(lang Language) bool {
	_, hasSubject := t.Subjects[lang]
	_, hasBody := t.Bodies[lang]
	return hasSubject && hasBody
}

// Validate checks that at least one language is supported and that the
// fallback salutation covers every supported language.
func (t *Tables) Validate() error {
	langs := t.Languages()
	if len(langs) == 0 {
		return campaignErrors.New(ErrInvalidTables).WithDetail("reason", "no language has both subject and body")
	}

	fallback, ok := t.Salutations[t.Fallback]
	if !ok {
		return campaignErrors.New(ErrInvalidTables).
			WithDetail("reason", "fallback salutation not defined").
			WithDetail("fallback", string(t.Fallback))
	}
	for _, lang := range langs {
		if _, ok := fallback[lang]; !ok {
			return campaignErrors.New(ErrInvalidTables).
				WithDetail("reason", "fallback salutation missing language").
				WithDetail("language", string(lang))
		}
	}

	for lang := range t.GroupMarkers {
		if _, ok := t.GroupBodies[lang]; !ok {
			return campaignErrors.New(ErrInvalidTables).
				WithDetail("reason", "group marker without group body").
				WithDetail("language", string(lang))
		}
	}
	return nil
}

// ParseLanguage normalizes raw and checks that t supports it.
func (t *Tables) ParseLanguage(raw string) (Language, error) {
	lang := NormalizeLanguage(raw)
	if !t.Supports(lang) {
		return "", campaignErrors.New(ErrUnsupportedLanguage).
			WithDetail("language", raw).
			WithDetail("supported", t.Languages())
	}
	return lang, nil
}
