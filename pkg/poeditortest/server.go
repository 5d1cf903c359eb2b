package poeditortest

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Server is a fake POEditor API for tests. It speaks the v2 envelope
// contract: every endpoint is a form POST answered with
// {"response": {...}, "result": {...}}.
//
// Configure canned results per endpoint path ("languages/list"), then point a
// client at [Server.URL]:
//
//	srv := poeditortest.NewServer()
//	defer srv.Close()
//	srv.Handle("languages/list", map[string]any{
//		"languages": []map[string]any{{"code": "en", "name": "English"}},
//	})
//	client := poeditor.NewClient("token", poeditor.WithBaseURL(srv.URL))
//
// A Server is safe for concurrent use.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	results  map[string]any
	failures map[string]failure
	statuses map[string]int
	raw      map[string]string
	exports  map[string][]byte
	calls    []Call
}

type failure struct {
	code    string
	message string
}

// Call records one request the server received.
type Call struct {
	Path        string     // endpoint path, e.g. "terms/add"
	Form        url.Values // decoded form fields, multipart included
	FileName    string     // multipart file name, empty without an upload
	FileContent []byte     // multipart file content
}

// NewServer starts a fake POEditor API on a local listener. Callers own the
// returned server and must Close it.
func NewServer() *Server {
	s := &Server{
		results:  make(map[string]any),
		failures: make(map[string]failure),
		statuses: make(map[string]int),
		raw:      make(map[string]string),
		exports:  make(map[string][]byte),
	}

	r := chi.NewRouter()
	r.Post("/{area}/{action}", s.handleAPI)
	r.Get("/exports/{name}", s.handleExport)
	s.Server = httptest.NewServer(r)
	return s
}

// SetToken makes the server reject any request whose api_token field differs
// from token, answering with the API-level 4011 failure. With an empty token
// (the default) every token is accepted.
func (s *Server) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Handle sets the result payload served for an endpoint path. The payload is
// wrapped into a success envelope on each request.
func (s *Server) Handle(path string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[path] = result
}

// Fail makes an endpoint answer with an API-level fail envelope.
func (s *Server) Fail(path, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{code: code, message: message}
}

// RespondHTTP makes an endpoint answer with a bare HTTP status and no body.
func (s *Server) RespondHTTP(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[path] = status
}

// RespondRaw makes an endpoint answer 200 with a verbatim body, bypassing the
// envelope. Useful for malformed-response tests.
func (s *Server) RespondRaw(path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[path] = body
}

// ServeExport registers a downloadable file and returns its absolute URL,
// ready to be embedded in a projects/export result.
func (s *Server) ServeExport(name string, content []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[name] = content
	return s.URL + "/exports/" + name
}

// Calls returns a copy of every request received so far, in order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent request, or nil if none arrived yet.
func (s *Server) LastCall() *Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	call := s.calls[len(s.calls)-1]
	return &call
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "area") + "/" + chi.URLParam(r, "action")

	call := Call{Path: path}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		call.Form = url.Values(r.MultipartForm.Value)
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			call.FileName = files[0].Filename
			call.FileContent, _ = io.ReadAll(f)
			f.Close()
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		call.Form = r.PostForm
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	token := s.token
	status, hasStatus := s.statuses[path]
	raw, hasRaw := s.raw[path]
	fail, hasFail := s.failures[path]
	result, hasResult := s.results[path]
	s.mu.Unlock()

	switch {
	case hasStatus:
		w.WriteHeader(status)
	case hasRaw:
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, raw)
	case token != "" && call.Form.Get("api_token") != token:
		writeFail(w, "4011", "Invalid API Token")
	case hasFail:
		writeFail(w, fail.code, fail.message)
	case hasResult:
		writeSuccess(w, result)
	default:
		writeSuccess(w, map[string]any{})
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	content, ok := s.exports[name]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(content)
}

func writeSuccess(w http.ResponseWriter, result any) {
	writeEnvelope(w, map[string]any{
		"response": map[string]string{"status": "success", "code": "200", "message": "OK"},
		"result":   result,
	})
}

func writeFail(w http.ResponseWriter, code, message string) {
	writeEnvelope(w, map[string]any{
		"response": map[string]string{"status": "fail", "code": code, "message": message},
	})
}

func writeEnvelope(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
