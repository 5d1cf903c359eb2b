package poeditor

import "context"

// AvailableLanguages returns every language POEditor supports, independent of
// any project.
func (c *Client) AvailableLanguages(ctx context.Context) ([]AvailableLanguage, error) {
	var res availableLanguagesResult
	if err := c.post(ctx, "languages/available", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// ListLanguages returns a project's languages with the translated count,
// completion percentage, and last-change time of each.
func (c *Client) ListLanguages(ctx context.Context, projectID int) ([]Language, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	var res languagesResult
	if err := c.post(ctx, "languages/list", map[string]string{"id": itoa(projectID)}, nil, &res); err != nil {
		return nil, err
	}
	return res.Languages, nil
}

// AddLanguage adds a language to a project.
func (c *Client) AddLanguage(ctx context.Context, projectID int, code string) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	if err := requireString("language", code); err != nil {
		return err
	}
	params := map[string]string{"id": itoa(projectID), "language": code}
	return c.post(ctx, "languages/add", params, nil, nil)
}

// DeleteLanguage removes a language and its translations from a project.
func (c *Client) DeleteLanguage(ctx context.Context, projectID int, code string) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	if err := requireString("language", code); err != nil {
		return err
	}
	params := map[string]string{"id": itoa(projectID), "language": code}
	return c.post(ctx, "languages/delete", params, nil, nil)
}

// SetReferenceLanguage marks a project language as the reference language.
func (c *Client) SetReferenceLanguage(ctx context.Context, projectID int, code string) error {
	if err := requireString("language", code); err != nil {
		return err
	}
	_, err := c.UpdateProject(ctx, projectID, UpdateProjectOptions{ReferenceLanguage: code})
	return err
}

// UpdateTranslations inserts or overwrites translations for a language.
// With fuzzyTrigger set, the matching translations in the project's other
// languages are marked fuzzy.
func (c *Client) UpdateTranslations(ctx context.Context, projectID int, code string, updates []TranslationUpdate, fuzzyTrigger bool) (*CountSummary, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	if err := requireString("language", code); err != nil {
		return nil, err
	}
	if err := validateEach(updates); err != nil {
		return nil, err
	}
	data, err := jsonParam(updates)
	if err != nil {
		return nil, err
	}
	params := map[string]string{
		"id":       itoa(projectID),
		"language": code,
		"data":     data,
	}
	if fuzzyTrigger {
		params["fuzzy_trigger"] = "1"
	}
	var res translationsSummaryResult
	if err := c.post(ctx, "languages/update", params, nil, &res); err != nil {
		return nil, err
	}
	return &res.Translations, nil
}

type availableLanguagesResult struct {
	Languages []AvailableLanguage `json:"languages"`
}

type languagesResult struct {
	Languages []Language `json:"languages"`
}

type translationsSummaryResult struct {
	Translations CountSummary `json:"translations"`
}
