package campaign

import "strings"

// Language is an upper-case locale code such as DE or FR.
type Language string

const (
	German  Language = "DE"
	English Language = "EN"
	French  Language = "FR"
	Dutch   Language = "NL"
)

// Salutation is the form-of-address code read from the roster.
type Salutation string

const (
	Mr      Salutation = "MR"
	Ms      Salutation = "MS"
	Neutral Salutation = "MX"
)

// Recipient is one roster row. Language and Salutation hold the raw cell
// values; the generator normalizes them.
type Recipient struct {
	Address    string
	FirstName  string
	LastName   string
	Language   string
	Salutation string

	// Row is the 1-based source row, used for reporting only.
	Row int
}

// Rejection records a recipient for which no job could be generated.
type Rejection struct {
	Row     int
	Address string
	Err     error
}

func (r Rejection) Error() string {
	return r.Err.Error()
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// NormalizeLanguage trims and upper-cases a raw language cell.
func NormalizeLanguage(raw string) Language {
	return Language(strings.ToUpper(strings.TrimSpace(raw)))
}
