// Package pkg holds the public libraries of the POEditor client.
//
// # Overview
//
// Two packages live here:
//
//  1. [poeditor] - Typed client for the POEditor v2 REST API
//  2. [poeditortest] - In-process fake POEditor server for tests
//
// # Quick Start
//
// Create a client and list the languages of a project:
//
//	import (
//	    "context"
//	    "github.com/craftleaf/poeditor/pkg/poeditor"
//	)
//
//	client := poeditor.NewClient(os.Getenv("POEDITOR_API_TOKEN"))
//	languages, err := client.ListLanguages(context.Background(), 4536)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test -tags integration ./pkg/...  # Include live API tests
//
// [poeditor]: https://pkg.go.dev/github.com/craftleaf/poeditor/pkg/poeditor
// [poeditortest]: https://pkg.go.dev/github.com/craftleaf/poeditor/pkg/poeditortest
package pkg
