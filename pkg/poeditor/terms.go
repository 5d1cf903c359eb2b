package poeditor

import "context"

// ListTerms returns a project's terms. With a non-empty language code, each
// term carries its translation in that language.
func (c *Client) ListTerms(ctx context.Context, projectID int, language string) ([]Term, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	params := map[string]string{"id": itoa(projectID)}
	if language != "" {
		params["language"] = language
	}
	var res termsListResult
	if err := c.post(ctx, "terms/list", params, nil, &res); err != nil {
		return nil, err
	}
	return res.Terms, nil
}

// AddTerms adds terms to a project. Existing (term, context) pairs are left
// untouched; the summary reports how many entries were actually added.
func (c *Client) AddTerms(ctx context.Context, projectID int, entries []TermEntry) (*CountSummary, error) {
	return mutateTerms(c, ctx, "terms/add", projectID, entries, nil)
}

// UpdateTerms edits or renames existing terms. With fuzzyTrigger set, the
// translations of updated terms are marked fuzzy in every language.
func (c *Client) UpdateTerms(ctx context.Context, projectID int, updates []TermUpdate, fuzzyTrigger bool) (*CountSummary, error) {
	var extra map[string]string
	if fuzzyTrigger {
		extra = map[string]string{"fuzzy_trigger": "1"}
	}
	return mutateTerms(c, ctx, "terms/update", projectID, updates, extra)
}

// DeleteTerms removes terms, and their translations, from a project.
func (c *Client) DeleteTerms(ctx context.Context, projectID int, refs []TermRef) (*CountSummary, error) {
	return mutateTerms(c, ctx, "terms/delete", projectID, refs, nil)
}

// AddComments attaches comments to existing terms.
func (c *Client) AddComments(ctx context.Context, projectID int, comments []CommentEntry) (*CountSummary, error) {
	return mutateTerms(c, ctx, "terms/add_comment", projectID, comments, nil)
}

// mutateTerms covers the terms/* mutations, which all take a JSON data field
// and answer with a terms counter summary.
func mutateTerms[T any](c *Client, ctx context.Context, path string, projectID int, entries []T, extra map[string]string) (*CountSummary, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	if err := validateEach(entries); err != nil {
		return nil, err
	}
	data, err := jsonParam(entries)
	if err != nil {
		return nil, err
	}
	params := map[string]string{"id": itoa(projectID), "data": data}
	for k, v := range extra {
		params[k] = v
	}
	var res termsSummaryResult
	if err := c.post(ctx, path, params, nil, &res); err != nil {
		return nil, err
	}
	return &res.Terms, nil
}

type termsListResult struct {
	Terms []Term `json:"terms"`
}
