package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"

	jsoniter "github.com/json-iterator/go"

	"bargain/pkg/contextx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// APIClient calls the JSON API in tests. A 2xx body is decoded into dest, any
// other body into errDest.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

func (a APIClient) Post(ctx context.Context, endpoint string, headers http.Header, request, dest, errDest any) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader(b), dest, errDest)
}

// PostJSON sends requestJSON as is, e.g. a malformed body.
func (a APIClient) PostJSON(ctx context.Context, endpoint string, headers http.Header, requestJSON string, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodPost, endpoint, headers, bytes.NewReader([]byte(requestJSON)), dest, errDest)
}

func (a APIClient) do(
	ctx context.Context,
	method string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if method == http.MethodPost && headers.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	logger(ctx).Debug("api request", slog.String("method", method), slog.String("endpoint", endpoint))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		logger(ctx).Debug("api response", slog.String("dump", string(dump)))
	}

	if err = decodeResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("decodeResponse: %w", err)
	}

	return resp, nil
}

func decodeResponse(r *http.Response, dest, errDest any) error {
	success := r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices

	switch {
	case success && dest != nil:
		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}
	case !success && errDest != nil:
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}
