package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// Per-verb wrappers over the request executor. Payloads are JSON-encoded;
// a nil payload sends no body.

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, payload any, opts ...RequestOption) (*http.Response, error) {
	body, err := marshalBody(payload)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, payload any, opts ...RequestOption) (*http.Response, error) {
	body, err := marshalBody(payload)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, payload any, opts ...RequestOption) (*http.Response, error) {
	body, err := marshalBody(payload)
	if err != nil {
		return nil, err
	}
	return c.doRequest(ctx, http.MethodPatch, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodDelete, path, nil, opts...)
}

func marshalBody(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newInternalError(err, "marshaling request body")
	}
	return body, nil
}
