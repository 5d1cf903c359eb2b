package poeditor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const (
	defaultBaseURL = "https://api.poeditor.com/v2"
	defaultTimeout = 30 * time.Second

	userAgent = "poeditor-go/1"

	statusSuccess = "success"

	// API-level failure codes that mean the token itself was rejected.
	codeInvalidToken = "4011"
	codeNoPermission = "4012"
)

// Client talks to the POEditor API. All methods issue a single authenticated
// POST per call and are safe for concurrent use by multiple goroutines.
//
// The zero value is not usable; construct with [NewClient].
type Client struct {
	rest   *resty.Client
	token  string
	logger *log.Logger
	retry  *retryPolicy
}

type retryPolicy struct {
	attempts int
	delay    time.Duration
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for tests against a mock
// server; the default is the public POEditor v2 endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.rest.SetBaseURL(u) }
}

// WithTimeout sets the per-request timeout. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rest.SetTimeout(d) }
}

// WithLogger enables debug logging of each request. Without a logger the
// client logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithRetry enables retrying of transient failures (network errors, 5xx and
// 429 responses) up to attempts total tries with exponential backoff starting
// at delay. Without this option every call is a single attempt.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if delay <= 0 {
			delay = time.Second
		}
		c.retry = &retryPolicy{attempts: max(attempts, 1), delay: delay}
	}
}

// NewClient creates a client authenticating with the given API token.
// Tokens live under My Account > API Access in the POEditor dashboard.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token: token,
		rest: resty.New().
			SetBaseURL(defaultBaseURL).
			SetTimeout(defaultTimeout).
			SetHeader("User-Agent", userAgent),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// uploadFile describes a multipart file part attached to a request.
type uploadFile struct {
	name   string
	reader io.Reader
}

// post sends one API request and decodes the envelope's result into out.
// Pass a nil out for endpoints whose result carries nothing of interest.
func (c *Client) post(ctx context.Context, path string, params map[string]string, file *uploadFile, out any) error {
	if c.retry == nil {
		return c.do(ctx, path, params, file, out)
	}
	if file != nil {
		// A consumed file reader cannot be replayed on a second attempt.
		return c.do(ctx, path, params, file, out)
	}

	backoff := retry.WithMaxRetries(uint64(c.retry.attempts-1), retry.NewExponential(c.retry.delay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, path, params, nil, out)
		if err != nil && isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) do(ctx context.Context, path string, params map[string]string, file *uploadFile, out any) error {
	form := make(map[string]string, len(params)+1)
	form["api_token"] = c.token
	for k, v := range params {
		form[k] = v
	}

	req := c.rest.R().SetContext(ctx).SetFormData(form)
	if file != nil {
		req.SetFileReader("file", file.name, file.reader)
	}

	start := time.Now()
	resp, err := req.Post(path)
	if c.logger != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		c.logger.Debug("poeditor request",
			"path", path,
			"status", status,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	if err != nil {
		return err
	}
	if err := checkStatus(resp.StatusCode()); err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &ParseError{Message: "decode response body", Err: err}
	}
	if env.Response == nil {
		return &ParseError{Message: `"response" key is not present`}
	}
	if env.Response.Status != statusSuccess {
		return apiError(env.Response)
	}
	if out != nil {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return &ParseError{Message: "decode result", Err: err}
		}
	}
	return nil
}

// envelope is the wrapper POEditor puts around every v2 response.
type envelope struct {
	Response *responseStatus `json:"response"`
	Result   json.RawMessage `json:"result"`
}

type responseStatus struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &AuthError{StatusCode: code}
	default:
		return &RequestError{StatusCode: code}
	}
}

// apiError maps an API-level fail envelope to the error taxonomy.
func apiError(rs *responseStatus) error {
	if rs.Code == codeInvalidToken || rs.Code == codeNoPermission {
		return &AuthError{Code: rs.Code, Message: rs.Message}
	}
	return &RequestError{Code: rs.Code, Message: rs.Message}
}

// isTransient reports whether err is worth a retry: network failures and
// server-side HTTP statuses. Auth, parse, and argument errors never are.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode >= 500 || reqErr.StatusCode == http.StatusTooManyRequests
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrParse) || errors.Is(err, ErrArgs) {
		return false
	}
	return true // transport-level error
}

func itoa(id int) string { return strconv.Itoa(id) }

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// jsonParam encodes v as the JSON string POEditor expects in data-style form
// fields.
func jsonParam(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", &ArgsError{Message: "encode request data", Err: err}
	}
	return string(b), nil
}
