package postgrest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	HeaderAPIKey        = "apikey"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderPrefer        = "Prefer"
	HeaderRequestID     = "X-Request-Id"

	PreferRepresentation = "return=representation"
)

type requestIDKey struct{}

// WithRequestID adjunta un id de request que se reenvía al backend.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID devuelve el id de request guardado en el contexto.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client habla con un backend REST estilo PostgREST.
type Client struct {
	baseURL string
	apiKey  string
	token   string
	http    *http.Client
	log     logrus.FieldLogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL, apiKey, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do ejecuta la petición y decodifica el cuerpo JSON en out.
// body nil no envía cuerpo; out nil descarta la respuesta.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any, headers http.Header) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	// Los headers del llamador se agregan, pero no reemplazan los fijos
	for key, values := range headers {
		switch http.CanonicalHeaderKey(key) {
		case http.CanonicalHeaderKey(HeaderAPIKey), HeaderAuthorization, HeaderContentType:
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderAuthorization, "Bearer "+c.token)
	req.Header.Set(HeaderContentType, "application/json")
	if id := RequestID(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return &NetworkError{Op: method + " " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	}).Debug("backend request")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: "read " + endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Resource: resourceOf(endpoint), Err: err}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out, nil)
}

// Post crea un recurso y pide al backend que devuelva la representación.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out, representation())
}

// Patch actualiza filas filtradas y devuelve la representación.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, endpoint, body, out, representation())
}

func representation() http.Header {
	h := http.Header{}
	h.Set(HeaderPrefer, PreferRepresentation)
	return h
}

// Eq arma un filtro de igualdad: field=eq.value
func Eq(field, value string) string {
	return url.QueryEscape(field) + "=eq." + url.QueryEscape(value)
}

// Query une una ruta con sus filtros.
func Query(path string, filters ...string) string {
	if len(filters) == 0 {
		return path
	}
	return path + "?" + strings.Join(filters, "&")
}

func resourceOf(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexAny(endpoint, "?/"); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
