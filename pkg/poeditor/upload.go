package poeditor

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// UploadOptions configures a projects/upload call. Updating, File, and
// Filename are required; Language is required unless only terms are updated.
//
// POEditor accepts at most one upload every 30 seconds per project; the
// service answers excess calls with a failure, the client does not pace them.
type UploadOptions struct {
	// Updating selects what the file modifies: terms, terms_translations,
	// or translations.
	Updating Updating `validate:"required,oneof=terms terms_translations translations"`

	// File is the localization file content; Filename is the name sent in
	// the multipart part, its extension tells POEditor the format.
	File     io.Reader `validate:"required"`
	Filename string    `validate:"required"`

	// Language is the language the file's translations belong to. Ignored
	// when Updating is terms, required otherwise.
	Language string

	// Overwrite replaces translations that already exist in the project.
	Overwrite bool

	// SyncTerms deletes project terms missing from the file and adds the new
	// ones. Ignored when Updating is translations. Use with caution.
	SyncTerms bool

	// Tags are attached to affected terms. Ignored when Updating is
	// translations. The special keys "all", "new", "obsolete", and
	// "overwritten_translations" select which terms get tagged.
	Tags []string

	// FuzzyTrigger marks the matching translations of the other languages
	// fuzzy for every value the upload changes.
	FuzzyTrigger bool
}

// Upload imports a localization file into a project and reports how many
// terms and translations were parsed, added, updated, and deleted.
func (c *Client) Upload(ctx context.Context, projectID int, opts UploadOptions) (*UploadResult, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	if err := validateStruct(opts); err != nil {
		return nil, err
	}
	if opts.Updating != UpdatingTerms && opts.Language == "" {
		return nil, &ArgsError{Message: "language is required when updating translations"}
	}
	if opts.Updating == UpdatingTranslations {
		// The endpoint ignores these for translations-only uploads.
		opts.Tags = nil
		opts.SyncTerms = false
	}

	params := map[string]string{
		"id":            itoa(projectID),
		"updating":      string(opts.Updating),
		"overwrite":     boolFlag(opts.Overwrite),
		"sync_terms":    boolFlag(opts.SyncTerms),
		"fuzzy_trigger": boolFlag(opts.FuzzyTrigger),
	}
	if opts.Language != "" {
		params["language"] = opts.Language
	}
	if len(opts.Tags) > 0 {
		tags, err := jsonParam(opts.Tags)
		if err != nil {
			return nil, err
		}
		params["tags"] = tags
	}

	file := &uploadFile{name: opts.Filename, reader: opts.File}
	var res UploadResult
	if err := c.post(ctx, "projects/upload", params, file, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UploadFile is [Client.Upload] reading the content from a local path; the
// multipart filename defaults to the path's base name.
func (c *Client) UploadFile(ctx context.Context, projectID int, path string, opts UploadOptions) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ArgsError{Message: "open upload file", Err: err}
	}
	defer f.Close()

	opts.File = f
	if opts.Filename == "" {
		opts.Filename = filepath.Base(path)
	}
	return c.Upload(ctx, projectID, opts)
}

// UploadTerms imports only the term list from a file.
func (c *Client) UploadTerms(ctx context.Context, projectID int, opts UploadOptions) (*UploadResult, error) {
	opts.Updating = UpdatingTerms
	return c.Upload(ctx, projectID, opts)
}

// UploadTermsTranslations imports terms and their translations from a file.
func (c *Client) UploadTermsTranslations(ctx context.Context, projectID int, opts UploadOptions) (*UploadResult, error) {
	opts.Updating = UpdatingTermsTranslations
	return c.Upload(ctx, projectID, opts)
}

// UploadTranslations imports only translations from a file, leaving the term
// list untouched.
func (c *Client) UploadTranslations(ctx context.Context, projectID int, opts UploadOptions) (*UploadResult, error) {
	opts.Updating = UpdatingTranslations
	return c.Upload(ctx, projectID, opts)
}
