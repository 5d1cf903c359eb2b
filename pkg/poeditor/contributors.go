package poeditor

import "context"

// ListContributors returns contributors, optionally narrowed to one project
// (projectID > 0) and one language.
func (c *Client) ListContributors(ctx context.Context, projectID int, language string) ([]Contributor, error) {
	params := map[string]string{}
	if projectID > 0 {
		params["id"] = itoa(projectID)
	}
	if language != "" {
		params["language"] = language
	}
	var res contributorsResult
	if err := c.post(ctx, "contributors/list", params, nil, &res); err != nil {
		return nil, err
	}
	return res.Contributors, nil
}

// AddContributor grants an account contributor access to one project
// language. POEditor sends the invitation email on its side.
func (c *Client) AddContributor(ctx context.Context, projectID int, name, email, language string) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	for field, value := range map[string]string{"name": name, "email": email, "language": language} {
		if err := requireString(field, value); err != nil {
			return err
		}
	}
	params := map[string]string{
		"id":       itoa(projectID),
		"name":     name,
		"email":    email,
		"language": language,
	}
	return c.post(ctx, "contributors/add", params, nil, nil)
}

// AddAdministrator grants an account administrator access to a project,
// covering all of its languages.
func (c *Client) AddAdministrator(ctx context.Context, projectID int, name, email string) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	if err := requireString("name", name); err != nil {
		return err
	}
	if err := requireString("email", email); err != nil {
		return err
	}
	params := map[string]string{
		"id":    itoa(projectID),
		"name":  name,
		"email": email,
		"admin": "1",
	}
	return c.post(ctx, "contributors/add", params, nil, nil)
}

// RemoveContributor revokes access to a project language. With an empty
// language the account is removed from the whole project, administrators
// included.
func (c *Client) RemoveContributor(ctx context.Context, projectID int, email, language string) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	if err := requireString("email", email); err != nil {
		return err
	}
	params := map[string]string{"id": itoa(projectID), "email": email}
	if language != "" {
		params["language"] = language
	}
	return c.post(ctx, "contributors/remove", params, nil, nil)
}

type contributorsResult struct {
	Contributors []Contributor `json:"contributors"`
}
