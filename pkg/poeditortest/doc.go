// Package poeditortest provides a fake POEditor API server for tests.
//
// The [Server] implements the v2 envelope contract on a local listener, with
// canned per-endpoint results, configurable failures (API-level fail
// envelopes, bare HTTP statuses, raw bodies), token rejection, and a file
// host for export downloads. The poeditor package's own tests run against
// it, and consumers can use it to test their integration without touching
// the real service.
package poeditortest
