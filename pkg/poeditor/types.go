package poeditor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Project holds project metadata. List responses populate the common fields;
// ViewProject additionally fills Description, ReferenceLanguage, and Terms
// (see https://poeditor.com/docs/api#projects_view).
//
// This struct, like every record type in this package, has no identity beyond
// its field values and is safe for concurrent reads after decoding.
type Project struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Public            IntBool   `json:"public"`
	Open              IntBool   `json:"open"`
	ReferenceLanguage string    `json:"reference_language,omitempty"`
	FallbackLanguage  string    `json:"fallback_language,omitempty"`
	Terms             int       `json:"terms,omitempty"`
	Created           Timestamp `json:"created"`
}

// AvailableLanguage is one of the languages POEditor supports globally
// (https://poeditor.com/docs/languages).
type AvailableLanguage struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Language is a language added to a project, with its completion state.
type Language struct {
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Translations int       `json:"translations"`
	Percentage   float64   `json:"percentage"`
	Updated      Timestamp `json:"updated"`
}

// Term is a project term. Translation is populated only when the listing was
// requested for a specific language.
type Term struct {
	Term        string       `json:"term"`
	Context     string       `json:"context,omitempty"`
	Plural      string       `json:"plural,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Comment     string       `json:"comment,omitempty"`
	Created     Timestamp    `json:"created"`
	Updated     Timestamp    `json:"updated"`
	Translation *Translation `json:"translation,omitempty"`
}

// Translation is the per-language content attached to a term.
type Translation struct {
	Content   TranslationContent `json:"content"`
	Fuzzy     IntBool            `json:"fuzzy"`
	Proofread IntBool            `json:"proofread"`
	Updated   Timestamp          `json:"updated"`
}

// Contributor is an account with access to one or more projects.
type Contributor struct {
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Permissions []ContributorPermission `json:"permissions"`
}

// ContributorPermission describes one project a contributor can access.
// Type is "administrator" or "contributor"; Languages is empty for
// administrators, who have access to all of them.
type ContributorPermission struct {
	Project     ProjectRef `json:"project"`
	Type        string     `json:"type"`
	Proofreader IntBool    `json:"proofreader,omitempty"`
	Languages   []string   `json:"languages,omitempty"`
}

// ProjectRef is the short project reference embedded in permission entries.
// The API returns the id as a string here, unlike everywhere else.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CountSummary reports how many entries a mutation parsed and touched.
// Endpoints fill only the counters that apply to them.
type CountSummary struct {
	Parsed  int `json:"parsed"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// UploadResult reports the outcome of a file upload, split between the term
// list and the translations.
type UploadResult struct {
	Terms        CountSummary `json:"terms"`
	Translations CountSummary `json:"translations"`
}

// FileType is a localization file format accepted by export and understood by
// upload (https://poeditor.com/docs/api#projects_export).
type FileType string

const (
	FileTypePO             FileType = "po"
	FileTypePOT            FileType = "pot"
	FileTypeMO             FileType = "mo"
	FileTypeXLS            FileType = "xls"
	FileTypeXLSX           FileType = "xlsx"
	FileTypeCSV            FileType = "csv"
	FileTypeINI            FileType = "ini"
	FileTypeRESW           FileType = "resw"
	FileTypeRESX           FileType = "resx"
	FileTypeAndroidStrings FileType = "android_strings"
	FileTypeAppleStrings   FileType = "apple_strings"
	FileTypeXLIFF          FileType = "xliff"
	FileTypeProperties     FileType = "properties"
	FileTypeKeyValueJSON   FileType = "key_value_json"
	FileTypeJSON           FileType = "json"
	FileTypeYML            FileType = "yml"
	FileTypeXMB            FileType = "xmb"
	FileTypeXTB            FileType = "xtb"
)

// Valid reports whether t names a known file format.
func (t FileType) Valid() bool {
	switch t {
	case FileTypePO, FileTypePOT, FileTypeMO, FileTypeXLS, FileTypeXLSX,
		FileTypeCSV, FileTypeINI, FileTypeRESW, FileTypeRESX,
		FileTypeAndroidStrings, FileTypeAppleStrings, FileTypeXLIFF,
		FileTypeProperties, FileTypeKeyValueJSON, FileTypeJSON, FileTypeYML,
		FileTypeXMB, FileTypeXTB:
		return true
	}
	return false
}

// Filter narrows an export to a translation state.
type Filter string

const (
	FilterTranslated   Filter = "translated"
	FilterUntranslated Filter = "untranslated"
	FilterFuzzy        Filter = "fuzzy"
	FilterNotFuzzy     Filter = "not_fuzzy"
	FilterAutomatic    Filter = "automatic"
	FilterNotAutomatic Filter = "not_automatic"
	FilterProofread    Filter = "proofread"
	FilterNotProofread Filter = "not_proofread"
)

// Valid reports whether f names a known translation state.
func (f Filter) Valid() bool {
	switch f {
	case FilterTranslated, FilterUntranslated, FilterFuzzy, FilterNotFuzzy,
		FilterAutomatic, FilterNotAutomatic, FilterProofread, FilterNotProofread:
		return true
	}
	return false
}

// Updating selects what a file upload modifies.
type Updating string

const (
	UpdatingTerms             Updating = "terms"
	UpdatingTermsTranslations Updating = "terms_translations"
	UpdatingTranslations      Updating = "translations"
)

// Valid reports whether u names a known upload mode.
func (u Updating) Valid() bool {
	switch u {
	case UpdatingTerms, UpdatingTermsTranslations, UpdatingTranslations:
		return true
	}
	return false
}

// IntBool decodes the 0/1 flags POEditor uses for booleans. The wire value
// may arrive as a number, a "0"/"1" string, or a plain JSON bool.
type IntBool bool

func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "", "0", "false", "null":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("invalid boolean flag %s", data)
	}
	return nil
}

// MarshalJSON writes the flag back in the 0/1 form the API expects.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Bool returns the flag as a plain bool.
func (b IntBool) Bool() bool { return bool(b) }

// timestampLayout matches POEditor's datetime rendering, an ISO 8601 variant
// with a colon-less zone offset: "2013-05-10T11:33:44+0000".
const timestampLayout = "2006-01-02T15:04:05Z0700"

// Timestamp decodes POEditor's datetime strings. The API sends an empty
// string where no timestamp exists; that decodes to the zero Timestamp.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timestampLayout, s)
	if err != nil {
		if parsed, rfcErr := time.Parse(time.RFC3339, s); rfcErr == nil {
			t.Time = parsed
			return nil
		}
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(timestampLayout) + `"`), nil
}

// TranslationContent is a translation body. For singular terms it is a plain
// string; for terms with a plural it is an object keyed by CLDR plural
// category ("one", "other", ...).
type TranslationContent struct {
	single  string
	plurals map[string]string
}

// Content builds a singular translation body.
func Content(s string) TranslationContent {
	return TranslationContent{single: s}
}

// PluralContent builds a plural translation body from CLDR category forms.
func PluralContent(forms map[string]string) TranslationContent {
	return TranslationContent{plurals: forms}
}

// IsPlural reports whether the content carries plural forms.
func (c TranslationContent) IsPlural() bool { return c.plurals != nil }

// String returns the singular body, or the "other" plural form as a fallback.
func (c TranslationContent) String() string {
	if c.plurals != nil {
		return c.plurals["other"]
	}
	return c.single
}

// Plural returns the body for one CLDR plural category.
func (c TranslationContent) Plural(category string) string { return c.plurals[category] }

// Plurals returns all plural forms, nil for singular content.
func (c TranslationContent) Plurals() map[string]string { return c.plurals }

func (c *TranslationContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*c = TranslationContent{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = TranslationContent{single: s}
	case '{':
		var forms map[string]string
		if err := json.Unmarshal(trimmed, &forms); err != nil {
			return err
		}
		*c = TranslationContent{plurals: forms}
	default:
		return fmt.Errorf("invalid translation content %s", trimmed)
	}
	return nil
}

func (c TranslationContent) MarshalJSON() ([]byte, error) {
	if c.plurals != nil {
		return json.Marshal(c.plurals)
	}
	return json.Marshal(c.single)
}

// TermEntry is a term to add or sync into a project.
type TermEntry struct {
	Term      string   `json:"term" validate:"required"`
	Context   string   `json:"context,omitempty"`
	Plural    string   `json:"plural,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Comment   string   `json:"comment,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// TermRef identifies an existing term; terms are unique per (term, context)
// pair within a project.
type TermRef struct {
	Term    string `json:"term" validate:"required"`
	Context string `json:"context,omitempty"`
}

// TermUpdate renames or edits an existing term.
type TermUpdate struct {
	Term       string   `json:"term" validate:"required"`
	Context    string   `json:"context,omitempty"`
	NewTerm    string   `json:"new_term,omitempty"`
	NewContext string   `json:"new_context,omitempty"`
	Plural     string   `json:"plural,omitempty"`
	Reference  string   `json:"reference,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// CommentEntry attaches a comment to an existing term.
type CommentEntry struct {
	Term    string `json:"term" validate:"required"`
	Context string `json:"context,omitempty"`
	Comment string `json:"comment" validate:"required"`
}

// TranslationUpdate inserts or overwrites one term's translation in a
// language.
type TranslationUpdate struct {
	Term        string             `json:"term" validate:"required"`
	Context     string             `json:"context,omitempty"`
	Translation TranslationPayload `json:"translation"`
}

// TranslationPayload is the content half of a [TranslationUpdate].
type TranslationPayload struct {
	Content TranslationContent `json:"content"`
	Fuzzy   IntBool            `json:"fuzzy"`
}
