// Package poeditor is a typed client for the POEditor translation
// management API (https://poeditor.com/docs/api).
//
// # Overview
//
// POEditor exposes a form-encoded POST API (v2). Every method on [Client]
// maps to exactly one endpoint and performs exactly one outbound request:
//
//	client := poeditor.NewClient(os.Getenv("POEDITOR_API_TOKEN"))
//	projects, err := client.ListProjects(ctx)
//
// The client is stateless apart from the API token supplied at construction
// and is safe for concurrent use by multiple goroutines.
//
// # Client Pattern
//
// Methods are grouped by API area, one file per area:
//
//   - projects: list, view, add, update, delete, sync, export, upload
//   - languages: available, list, add, delete, update translations
//   - terms: list, add, update, delete, comment
//   - contributors: list, add, remove
//
// Each method takes a [context.Context], validates its inputs for presence
// and enum membership only, and decodes the endpoint's JSON result into a
// plain record type.
//
// # Errors
//
// Failures surface as one of four types, each matchable with [errors.Is]
// against its sentinel:
//
//   - [ArgsError] ([ErrArgs]): input rejected before any request was sent
//   - [AuthError] ([ErrAuth]): the API token was rejected
//   - [RequestError] ([ErrRequest]): the service answered with a failure
//   - [ParseError] ([ErrParse]): the response body had an unexpected shape
//
// The library never retries and never logs on its own. Retrying transient
// failures can be opted into with [WithRetry], and request-level debug
// logging with [WithLogger].
package poeditor
