package bankapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

const (
	maxResponseBytes = 1 << 20

	loginPath   = "user/login"
	profilePath = "user/profile"
	signupPath  = "user/signup"

	requestIDHeader = "X-Request-ID"
)

var errMissingUserID = errors.New("missing user id")

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

var _ ports.BankAPI = Client{}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

type loginBody struct {
	Token string `json:"token"`
}

type identityBody struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b identityBody) identity() domain.Identity {
	return domain.Identity{
		ID:        b.ID,
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (c Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	payload := map[string]string{"email": creds.Email, "password": creds.Password}

	env, err := c.post(ctx, loginPath, "", payload)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var body loginBody
	if err := decodeBody(env, &body); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if body.Token == "" {
		return "", errors.New("login response missing token")
	}
	return body.Token, nil
}

func (c Client) Profile(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.New("token is required")
	}

	env, err := c.post(ctx, profilePath, token, struct{}{})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("fetch profile: %w", err)
	}

	var body identityBody
	if err := decodeBody(env, &body); err != nil {
		return domain.Identity{}, fmt.Errorf("decode profile response: %w", err)
	}
	if body.ID == "" {
		return domain.Identity{}, fmt.Errorf("profile response: %w", errMissingUserID)
	}
	return body.identity(), nil
}

func (c Client) Signup(ctx context.Context, reg domain.Registration) (domain.Identity, string, error) {
	payload := map[string]string{
		"firstName": reg.FirstName,
		"lastName":  reg.LastName,
		"email":     reg.Email,
		"password":  reg.Password,
	}

	env, err := c.post(ctx, signupPath, "", payload)
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("signup: %w", err)
	}

	var body identityBody
	if err := decodeBody(env, &body); err != nil {
		return domain.Identity{}, "", fmt.Errorf("decode signup response: %w", err)
	}
	if body.ID == "" {
		return domain.Identity{}, "", fmt.Errorf("signup response: %w", errMissingUserID)
	}
	return body.identity(), env.Message, nil
}

func (c Client) post(ctx context.Context, path string, token string, payload any) (envelope, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return envelope{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return envelope{}, fmt.Errorf("encode request: %w", err)
	}

	log, requestID := logger.WithRequestID(c.Logger)

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return envelope{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Debug("bank api request failed", "path", path, "error", err)
		return envelope{}, err
	}
	defer func() { _ = resp.Body.Close() }()
	log.Debug("bank api request", "path", path, "status", resp.StatusCode, "elapsed", time.Since(started))

	var env envelope
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &domain.APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = strings.TrimSpace(env.Message)
		}
		return envelope{}, apiErr
	}
	if decodeErr != nil {
		return envelope{}, fmt.Errorf("decode response: %w", decodeErr)
	}
	return env, nil
}

func decodeBody(env envelope, out any) error {
	if len(env.Body) == 0 || string(env.Body) == "null" {
		return errors.New("response body is empty")
	}
	return json.Unmarshal(env.Body, out)
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// buildAPIURL resolves path below baseURL, keeping any path prefix such as
// /api/v1.
func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
