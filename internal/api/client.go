// Package api talks to the commerce backend. Every entity gets a small
// stateless service over one shared Client; responses come back in the
// backend's envelope and are unwrapped through DecodeData.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
)

var errEmptyEnvelope = errors.New("empty response envelope")

type Client struct {
	baseURL string
	hc      *http.Client
	log     *slog.Logger
}

// NewClient builds the shared backend client. The timeout is the only
// transport policy there is: calls are fire-once, no retry, no backoff.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Do issues one JSON request and decodes the envelope. Transport errors
// surface as Unavailable; a non-2xx response that still carries an
// envelope is returned as-is so the caller branches on Success.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Envelope, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "backend_unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("err", err),
		)
		return nil, apperr.UnavailableErr("The server is not responding. Please try again.", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.UnavailableErr("The server response could not be read.", err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// No envelope at all: classify by HTTP status.
		if resp.StatusCode >= 400 {
			return nil, apperr.UnavailableErr(
				fmt.Sprintf("The server returned an unexpected error (%d).", resp.StatusCode),
				fmt.Errorf("non-envelope response: status %d", resp.StatusCode),
			)
		}
		return nil, apperr.Wrap(fmt.Errorf("decode envelope: %w", err))
	}
	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}
	return &env, nil
}

// Blob is an opaque binary download, e.g. an order receipt. The content
// is never parsed here, only passed through.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
}

// DoRaw fetches a binary endpoint without envelope decoding.
func (c *Client) DoRaw(ctx context.Context, path string, query url.Values) (*Blob, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperr.UnavailableErr("The server is not responding. Please try again.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, apperr.NotFoundErr("The requested file was not found.")
		}
		return nil, apperr.UnavailableErr(
			fmt.Sprintf("The download failed (%d).", resp.StatusCode),
			fmt.Errorf("blob download: status %d", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.UnavailableErr("The download was interrupted.", err)
	}

	return &Blob{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func filenameFrom(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// Call is the one-liner the services are built from: request, unwrap,
// decode.
func Call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	env, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeData[T](env)
}
