package poeditor

import "context"

// ListProjects returns the projects owned by or shared with the account.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var res projectsResult
	if err := c.post(ctx, "projects/list", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Projects, nil
}

// ViewProject returns one project's details, including the fields the list
// view omits (description, reference language, term count).
func (c *Client) ViewProject(ctx context.Context, projectID int) (*Project, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	var res projectResult
	if err := c.post(ctx, "projects/view", map[string]string{"id": itoa(projectID)}, nil, &res); err != nil {
		return nil, err
	}
	if res.Project == nil {
		return nil, &ParseError{Message: `"project" key is not present in result`}
	}
	return res.Project, nil
}

// AddProject creates a project and returns its id. The description may be
// empty.
func (c *Client) AddProject(ctx context.Context, name, description string) (int, error) {
	if err := requireString("name", name); err != nil {
		return 0, err
	}
	params := map[string]string{"name": name, "description": description}
	var res projectResult
	if err := c.post(ctx, "projects/add", params, nil, &res); err != nil {
		return 0, err
	}
	if res.Project == nil {
		return 0, &ParseError{Message: `"project" key is not present in result`}
	}
	return res.Project.ID, nil
}

// UpdateProjectOptions carries the project settings to change. Empty fields
// are left untouched on the server.
type UpdateProjectOptions struct {
	Name              string
	Description       string
	ReferenceLanguage string
}

// UpdateProject updates project settings and returns the updated project.
func (c *Client) UpdateProject(ctx context.Context, projectID int, opts UpdateProjectOptions) (*Project, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	params := map[string]string{"id": itoa(projectID)}
	if opts.Name != "" {
		params["name"] = opts.Name
	}
	if opts.Description != "" {
		params["description"] = opts.Description
	}
	if opts.ReferenceLanguage != "" {
		params["reference_language"] = opts.ReferenceLanguage
	}
	var res projectResult
	if err := c.post(ctx, "projects/update", params, nil, &res); err != nil {
		return nil, err
	}
	if res.Project == nil {
		return nil, &ParseError{Message: `"project" key is not present in result`}
	}
	return res.Project, nil
}

// DeleteProject removes a project from the account. Only the project owner
// can delete it; the server enforces that.
func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	return c.post(ctx, "projects/delete", map[string]string{"id": itoa(projectID)}, nil, nil)
}

// SyncTerms replaces the project's term list with entries: terms missing from
// entries are deleted together with their translations, new ones are added.
// Irreversible; prefer [Client.AddTerms] unless a full sync is intended.
func (c *Client) SyncTerms(ctx context.Context, projectID int, entries []TermEntry) (*CountSummary, error) {
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
	var res termsSummaryResult
	if err := c.post(ctx, "projects/sync", params, nil, &res); err != nil {
		return nil, err
	}
	return &res.Terms, nil
}

type projectsResult struct {
	Projects []Project `json:"projects"`
}

type projectResult struct {
	Project *Project `json:"project"`
}

type termsSummaryResult struct {
	Terms CountSummary `json:"terms"`
}
