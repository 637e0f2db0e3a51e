package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/logger"
	"github.com/athletetrack/athletetrack/internal/models"
)

// Client talks to the AthleteTrack backend. The session rides on a cookie the
// server sets at login; the client persists it and nothing else.
type Client struct {
	base *url.URL
	http *http.Client
	jar  *fileJar
}

// New creates a client for the given base URL. cookiePath is where the session
// cookie is persisted; pass "" for an in-memory session (tests, one-shot use).
func New(baseURL, cookiePath string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	jar, err := newFileJar(base, cookiePath)
	if err != nil {
		return nil, err
	}
	return &Client{
		base: base,
		http: &http.Client{Jar: jar},
		jar:  jar,
	}, nil
}

// do issues one JSON request. A non-2xx status decodes the server's message
// body into *Error; the transport error passes through wrapped.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	u := *c.base
	parsed, err := url.Parse(path)
	if err != nil {
		return err
	}
	u.Path = parsed.Path
	u.RawQuery = parsed.RawQuery

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.New().String()
	logger.Debug("API request", "id", reqID, "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("API transport failure", "id", reqID, "error", err)
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		logger.Debug("API error response", "id", reqID, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}

// Login authenticates and establishes the session cookie. A 401 maps to
// ErrInvalidCredentials; everything else follows the usual taxonomy.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/login", creds, &user)
	if errors.Is(err, ErrUnauthenticated) {
		// A 401 at login is a credential problem, not an expired session.
		return models.User{}, ErrInvalidCredentials
	}
	return user, err
}

// Register creates an account and establishes the session cookie. A 409 means
// the username is taken (ErrConflict via errors.Is).
func (c *Client) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/api/register", reg, &user)
	return user, err
}

// Logout ends the server session and drops the local cookie. The local cookie
// is cleared even when the server call fails: the local session is
// authoritative for UI gating.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	c.jar.clear()
	return err
}

// CurrentUser rehydrates the session from the cookie.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodGet, "/api/user", nil, &user)
	return user, err
}

func (c *Client) Metrics(ctx context.Context, userID int) ([]models.PerformanceMetric, error) {
	var out []models.PerformanceMetric
	err := c.do(ctx, http.MethodGet, constants.ResourceMetrics+"?userId="+strconv.Itoa(userID), nil, &out)
	return out, err
}

func (c *Client) CreateMetric(ctx context.Context, m models.PerformanceMetric) (models.PerformanceMetric, error) {
	var out models.PerformanceMetric
	err := c.do(ctx, http.MethodPost, constants.ResourceMetrics, m, &out)
	return out, err
}

func (c *Client) NutritionLogs(ctx context.Context, userID int) ([]models.NutritionLog, error) {
	var out []models.NutritionLog
	err := c.do(ctx, http.MethodGet, constants.ResourceNutrition+"?userId="+strconv.Itoa(userID), nil, &out)
	return out, err
}

func (c *Client) CreateNutritionLog(ctx context.Context, n models.NutritionLog) (models.NutritionLog, error) {
	var out models.NutritionLog
	err := c.do(ctx, http.MethodPost, constants.ResourceNutrition, n, &out)
	return out, err
}

// AnalyzeNutrition asks the server to estimate calories and protein for a
// free-text food list.
func (c *Client) AnalyzeNutrition(ctx context.Context, foodItems string) (models.NutritionAnalysis, error) {
	var out models.NutritionAnalysis
	body := map[string]string{"foodItems": foodItems}
	err := c.do(ctx, http.MethodPost, "/api/nutrition/analyze", body, &out)
	return out, err
}

func (c *Client) Injuries(ctx context.Context, userID int) ([]models.Injury, error) {
	var out []models.Injury
	err := c.do(ctx, http.MethodGet, constants.ResourceInjuries+"?userId="+strconv.Itoa(userID), nil, &out)
	return out, err
}

func (c *Client) CreateInjury(ctx context.Context, i models.Injury) (models.Injury, error) {
	var out models.Injury
	err := c.do(ctx, http.MethodPost, constants.ResourceInjuries, i, &out)
	return out, err
}

func (c *Client) Finances(ctx context.Context, userID int) ([]models.Finance, error) {
	var out []models.Finance
	err := c.do(ctx, http.MethodGet, constants.ResourceFinances+"?userId="+strconv.Itoa(userID), nil, &out)
	return out, err
}

func (c *Client) CreateFinance(ctx context.Context, f models.Finance) (models.Finance, error) {
	var out models.Finance
	err := c.do(ctx, http.MethodPost, constants.ResourceFinances, f, &out)
	return out, err
}

// Advice asks the coach service a question with assembled athlete context.
func (c *Client) Advice(ctx context.Context, req models.AdviceRequest) (models.Advice, error) {
	var out models.Advice
	err := c.do(ctx, http.MethodPost, "/api/ai-coach/advice", req, &out)
	return out, err
}

// TrainingPlan asks the coach service for a weekly program.
func (c *Client) TrainingPlan(ctx context.Context, req models.TrainingPlanRequest) (models.TrainingPlan, error) {
	var out models.TrainingPlan
	err := c.do(ctx, http.MethodPost, "/api/ai-coach/training-plan", req, &out)
	return out, err
}
