package poeditor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestListProjects(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/list", map[string]any{
		"projects": []map[string]any{
			{
				"id":      4536,
				"name":    "Website",
				"public":  "0",
				"open":    0,
				"created": "2013-05-10T11:33:44+0000",
			},
			{
				"id":      4537,
				"name":    "Mobile App",
				"public":  1,
				"open":    "1",
				"created": "2014-01-02T08:00:00+0000",
			},
		},
	})

	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects() error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}

	first := projects[0]
	if first.ID != 4536 || first.Name != "Website" {
		t.Errorf("first project = %+v", first)
	}
	if first.Public.Bool() || first.Open.Bool() {
		t.Error("first project should be private and closed")
	}
	want := time.Date(2013, 5, 10, 11, 33, 44, 0, time.UTC)
	if !first.Created.Time.Equal(want) {
		t.Errorf("created = %v, want %v", first.Created.Time, want)
	}

	second := projects[1]
	if !second.Public.Bool() || !second.Open.Bool() {
		t.Error("second project should be public and open")
	}
}

func TestViewProject(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/view", map[string]any{
		"project": map[string]any{
			"id":                 4536,
			"name":               "Website",
			"description":        "Marketing site",
			"public":             "0",
			"open":               "0",
			"reference_language": "en",
			"terms":              150,
			"created":            "2013-05-10T11:33:44+0000",
		},
	})

	p, err := c.ViewProject(context.Background(), 4536)
	if err != nil {
		t.Fatalf("ViewProject() error: %v", err)
	}
	if p.Description != "Marketing site" {
		t.Errorf("description = %q", p.Description)
	}
	if p.ReferenceLanguage != "en" {
		t.Errorf("reference language = %q", p.ReferenceLanguage)
	}
	if p.Terms != 150 {
		t.Errorf("terms = %d, want 150", p.Terms)
	}
	if got := srv.LastCall().Form.Get("id"); got != "4536" {
		t.Errorf("id form field = %q, want %q", got, "4536")
	}
}

func TestViewProjectMissingResult(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/view", map[string]any{})

	_, err := c.ViewProject(context.Background(), 4536)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
}

func TestAddProject(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/add", map[string]any{
		"project": map[string]any{"id": 7788, "name": "New Project", "created": "2020-01-01T00:00:00+0000"},
	})

	id, err := c.AddProject(context.Background(), "New Project", "something fresh")
	if err != nil {
		t.Fatalf("AddProject() error: %v", err)
	}
	if id != 7788 {
		t.Errorf("id = %d, want 7788", id)
	}

	form := srv.LastCall().Form
	if form.Get("name") != "New Project" {
		t.Errorf("name form field = %q", form.Get("name"))
	}
	if form.Get("description") != "something fresh" {
		t.Errorf("description form field = %q", form.Get("description"))
	}
}

func TestAddProjectRequiresName(t *testing.T) {
	c, srv := newTestPair(t)

	_, err := c.AddProject(context.Background(), "", "")
	if !errors.Is(err, ErrArgs) {
		t.Fatalf("error = %v, want ErrArgs", err)
	}
	if n := len(srv.Calls()); n != 0 {
		t.Errorf("server saw %d calls, want 0", n)
	}
}

func TestUpdateProjectSendsOnlySetFields(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/update", map[string]any{
		"project": map[string]any{"id": 4536, "name": "Renamed", "created": "2013-05-10T11:33:44+0000"},
	})

	p, err := c.UpdateProject(context.Background(), 4536, UpdateProjectOptions{Name: "Renamed"})
	if err != nil {
		t.Fatalf("UpdateProject() error: %v", err)
	}
	if p.Name != "Renamed" {
		t.Errorf("name = %q, want %q", p.Name, "Renamed")
	}

	form := srv.LastCall().Form
	if form.Get("name") != "Renamed" {
		t.Errorf("name form field = %q", form.Get("name"))
	}
	if _, present := form["description"]; present {
		t.Error("description should not be sent when unset")
	}
	if _, present := form["reference_language"]; present {
		t.Error("reference_language should not be sent when unset")
	}
}

func TestDeleteProject(t *testing.T) {
	c, srv := newTestPair(t)

	if err := c.DeleteProject(context.Background(), 4536); err != nil {
		t.Fatalf("DeleteProject() error: %v", err)
	}
	call := srv.LastCall()
	if call.Path != "projects/delete" {
		t.Errorf("path = %q", call.Path)
	}
	if call.Form.Get("id") != "4536" {
		t.Errorf("id form field = %q", call.Form.Get("id"))
	}
}

func TestSyncTerms(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/sync", map[string]any{
		"terms": map[string]int{"parsed": 3, "added": 1, "updated": 1, "deleted": 2},
	})

	summary, err := c.SyncTerms(context.Background(), 4536, []TermEntry{
		{Term: "Add new list", Reference: "/projects"},
		{Term: "one project found", Plural: "%d projects found", Tags: []string{"first_tag"}},
		{Term: "Show all projects"},
	})
	if err != nil {
		t.Fatalf("SyncTerms() error: %v", err)
	}
	if summary.Parsed != 3 || summary.Added != 1 || summary.Updated != 1 || summary.Deleted != 2 {
		t.Errorf("summary = %+v", summary)
	}

	data := srv.LastCall().Form.Get("data")
	if data == "" {
		t.Fatal("data form field missing")
	}
	if want := `"plural":"%d projects found"`; !strings.Contains(data, want) {
		t.Errorf("data = %s, want it to contain %s", data, want)
	}
}

func TestSyncTermsRejectsEmptyData(t *testing.T) {
	c, _ := newTestPair(t)

	_, err := c.SyncTerms(context.Background(), 4536, nil)
	if !errors.Is(err, ErrArgs) {
		t.Fatalf("error = %v, want ErrArgs", err)
	}
}
