// Package openload provides a client for the OpenLoad file-hosting HTTP
// API: account information, file uploads, file metadata, download tickets,
// remote uploads and folder listings.
package openload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.openload.co/1"
	defaultTimeout = 30 * time.Second
)

// Client represents an OpenLoad API client. It holds the account credentials
// and a base endpoint URL, mutates nothing after construction and is safe
// for concurrent use.
type Client struct {
	login      string
	key        string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logrus.Logger
}

var _ ClientAPI = (*Client)(nil)

// Option allows customizing the client during construction.
type Option func(*Client) error

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if _, err := url.ParseRequestURI(baseURL); err != nil {
			return &Error{Kind: KindConfiguration, Message: fmt.Sprintf("invalid base URL %q", baseURL), Err: err}
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient overrides the HTTP client used for all requests. The
// supplied client must be safe for concurrent use.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return &Error{Kind: KindConfiguration, Message: "http client cannot be nil"}
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout bounds every API call. A call exceeding the timeout fails
// with a network error instead of blocking indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return &Error{Kind: KindConfiguration, Message: "timeout must be positive"}
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

// WithLogger overrides the default logger. The default discards everything:
// the client never logs on the caller's behalf unless asked to.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return &Error{Kind: KindConfiguration, Message: "logger cannot be nil"}
		}
		c.logger = logger
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) error {
		c.userAgent = userAgent
		return nil
	}
}

// NewClient creates a new OpenLoad client for the given API login and key.
// Both must be non-empty; credentials are validated here so a misconfigured
// client fails before any request is made.
func NewClient(login, key string, opts ...Option) (*Client, error) {
	if login == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "login cannot be empty"}
	}
	if key == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "key cannot be empty"}
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := &Client{
		login:   login,
		key:     key,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// envelope is the outer shape every API response conforms to.
type envelope struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Result json.RawMessage `json:"result"`
}

// doRequest executes an HTTP request and classifies transport failures.
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		msg := "request failed"
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			msg = "request timed out"
		}
		return nil, &Error{Kind: KindNetwork, Message: msg, Err: err}
	}

	return resp, nil
}

// get issues a GET request against the given API path with the credentials
// attached, validates the response envelope and decodes its result into out.
// It is used by every read-style operation.
func (c *Client) get(path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("login", c.login)
	params.Set("key", c.key)

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/"+path+"?"+params.Encode(), nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "building request", Err: err}
	}

	// Credentials are query parameters, so only the path is logged.
	c.logger.Debugf("GET %s/%s", c.baseURL, path)

	resp, err := c.doRequest(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp.Body, out)
}

// decodeEnvelope reads an API response body, validates the envelope shape,
// classifies its status and decodes the result payload into out. Any body
// that does not decode into the envelope shape is a protocol error carrying
// the raw body.
func decodeEnvelope(r io.Reader, out any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "reading response body", Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &Error{Kind: KindProtocol, Message: "response is not a valid API envelope", Body: body, Err: err}
	}

	if err := classifyStatus(env.Status, env.Msg); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &Error{Kind: KindProtocol, Message: "unexpected result payload", Body: body, Err: err}
	}

	return nil
}
