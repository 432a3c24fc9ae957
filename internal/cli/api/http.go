package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// doJSON sends payload (if non-nil) as JSON and decodes a 2xx response into out (if non-nil).
// Every failure comes back as *APIError.
func (c *Client) doJSON(ctx context.Context, op, method, url string, payload, out any) error {
	fail := func(status int, body string, err error) error {
		c.logger.Debugw("api request failed", "op", op, "method", method, "url", url, "status", status, "error", err)
		return &APIError{Op: op, Method: method, URL: url, StatusCode: status, Body: body, Err: err}
	}

	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fail(0, "", fmt.Errorf("encode: %w", err))
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fail(0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(0, "", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, strings.TrimSpace(string(body)), nil)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode: %w", err))
	}
	return nil
}
