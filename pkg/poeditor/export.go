package poeditor

import (
	"context"
	"io"
	"os"
)

// ExportOptions configures a projects/export call. FileType is required.
type ExportOptions struct {
	// FileType selects the localization file format to generate.
	FileType FileType `validate:"required,oneof=po pot mo xls xlsx csv ini resw resx android_strings apple_strings xliff properties key_value_json json yml xmb xtb"`

	// Filters narrow the export to terms in the given translation states.
	Filters []Filter `validate:"omitempty,dive,oneof=translated untranslated fuzzy not_fuzzy automatic not_automatic proofread not_proofread"`

	// Tags narrow the export to terms carrying any of the given tags.
	Tags []string

	// Order set to "terms" sorts the exported entries alphabetically.
	Order string `validate:"omitempty,oneof=terms"`
}

// Export generates a localization file for one project language and returns
// the URL it can be downloaded from. The URL expires after ten minutes.
func (c *Client) Export(ctx context.Context, projectID int, language string, opts ExportOptions) (string, error) {
	if err := requireProjectID(projectID); err != nil {
		return "", err
	}
	if err := requireString("language", language); err != nil {
		return "", err
	}
	if err := validateStruct(opts); err != nil {
		return "", err
	}

	params := map[string]string{
		"id":       itoa(projectID),
		"language": language,
		"type":     string(opts.FileType),
	}
	if len(opts.Filters) > 0 {
		filters, err := jsonParam(opts.Filters)
		if err != nil {
			return "", err
		}
		params["filters"] = filters
	}
	if len(opts.Tags) > 0 {
		tags, err := jsonParam(opts.Tags)
		if err != nil {
			return "", err
		}
		params["tags"] = tags
	}
	if opts.Order != "" {
		params["order"] = opts.Order
	}

	var res exportResult
	if err := c.post(ctx, "projects/export", params, nil, &res); err != nil {
		return "", err
	}
	if res.URL == "" {
		return "", &ParseError{Message: `"url" key is not present in result`}
	}
	return res.URL, nil
}

// DownloadExport streams the file behind an export URL into w.
func (c *Client) DownloadExport(ctx context.Context, url string, w io.Writer) error {
	resp, err := c.rest.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer body.Close()

	if err := checkStatus(resp.StatusCode()); err != nil {
		return err
	}
	_, err = io.Copy(w, body)
	return err
}

// ExportToFile exports one project language and writes the generated file to
// path. It returns the export URL the content was fetched from.
func (c *Client) ExportToFile(ctx context.Context, projectID int, language string, opts ExportOptions, path string) (string, error) {
	url, err := c.Export(ctx, projectID, language, opts)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := c.DownloadExport(ctx, url, f); err != nil {
		f.Close()
		return "", err
	}
	return url, f.Close()
}

type exportResult struct {
	URL string `json:"url"`
}
