package scoresheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const csrfCookieName = "csrftoken"
const sessionCookieName = "sessionid"

// Credentials carries the browser's backend session through this service.
// Mutating requests additionally need the CSRF token in a header.
type Credentials struct {
	SessionID string
	CSRFToken string
}

// RequestError means the transport failed or the body was not the JSON we
// expected. Fatal for the current render, never retried here.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError is a completed request with a non-2xx response. The backend's
// status is the source of truth; callers decide recovery.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.Code)
}

func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// Client talks to the scoresheet backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetJSON fetches url and decodes the JSON body into `into`, forwarding the
// caller's backend session cookie so the API sees the logged-in player.
func (c *Client) GetJSON(ctx context.Context, creds Credentials, url string, into interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	attachSession(req, creds)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &StatusError{Code: response.StatusCode, URL: url}
	}

	if err := json.NewDecoder(response.Body).Decode(into); err != nil {
		return &RequestError{URL: url, Err: err}
	}
	return nil
}

// Mutate issues a POST, PATCH or DELETE with an optional JSON body. The CSRF
// token always travels in the X-CSRFToken header, mirroring what the backend
// expects from its own pages.
func (c *Client) Mutate(ctx context.Context, creds Credentials, method, url string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &RequestError{URL: url, Err: err}
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRFToken", creds.CSRFToken)
	attachSession(req, creds)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		payload, _ := io.ReadAll(response.Body)
		log.Printf("%s %s returned %d: %s", method, url, response.StatusCode, string(payload))
		return &StatusError{Code: response.StatusCode, URL: url}
	}
	return nil
}

// MutateInto is Mutate for endpoints whose response body the caller needs,
// such as match-create returning the new match resource.
func (c *Client) MutateInto(ctx context.Context, creds Credentials, method, url string, body, into interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRFToken", creds.CSRFToken)
	attachSession(req, creds)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &StatusError{Code: response.StatusCode, URL: url}
	}

	if err := json.NewDecoder(response.Body).Decode(into); err != nil {
		return &RequestError{URL: url, Err: err}
	}
	return nil
}

// Login obtains a CSRF token from the login endpoint, posts the credentials,
// and returns the session cookies the backend sets on success. A 4xx comes
// back as a StatusError so the caller can map it to invalid credentials.
func (c *Client) Login(ctx context.Context, username, password string) ([]*http.Cookie, error) {
	loginURL := c.LoginEndpoint()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return nil, &RequestError{URL: loginURL, Err: err}
	}
	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: loginURL, Err: err}
	}
	io.Copy(io.Discard, response.Body)
	response.Body.Close()

	var csrfToken string
	for _, cookie := range response.Cookies() {
		if cookie.Name == csrfCookieName {
			csrfToken = cookie.Value
		}
	}

	jsonData, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, &RequestError{URL: loginURL, Err: err}
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &RequestError{URL: loginURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-CSRFToken", csrfToken)
	if csrfToken != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: csrfToken})
	}

	response, err = c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: loginURL, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &StatusError{Code: response.StatusCode, URL: loginURL}
	}
	return response.Cookies(), nil
}

func attachSession(req *http.Request, creds Credentials) {
	if creds.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: creds.SessionID})
	}
	if creds.CSRFToken != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: creds.CSRFToken})
	}
}
