package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL points at the local platform API.
	DefaultBaseURL = "http://localhost:8001/api/v1"

	contentType = "application/json"
	userAgent   = "skillscope-tui"
)

// Client talks to the career-matching platform API.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	BaseURL    string
}

// New creates a Client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL.
func New(logger *zap.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		logger:  logger,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Questions fetches the assessment question bank, or the one-per-
// category test subset when testMode is set.
func (c *Client) Questions(ctx context.Context, testMode bool) ([]AssessmentQuestion, error) {
	path := "assessment/questions"
	if testMode {
		path += "/test"
	}
	var questions []AssessmentQuestion
	if err := c.getJSON(ctx, path, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitAssessment posts the answer map to the scoring endpoint. A
// fresh opaque user id is generated for every call and sent as
// X-User-ID; ids are never reused across submissions. The response
// body is schema-checked before its AI fields are trusted.
func (c *Client) SubmitAssessment(ctx context.Context, answers map[int]int, testMode bool) (*AssessmentResult, error) {
	path := "assessment/submit"
	if testMode {
		path += "/test"
	}

	body, err := json.Marshal(struct {
		Answers map[int]int `json:"answers"`
	}{Answers: answers})
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	userID := "tui-" + uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-User-ID", userID)

	c.logger.Debug("submitting assessment",
		zap.String("url", req.URL.String()),
		zap.String("user_id", userID),
		zap.Int("answers", len(answers)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if err := validateResult(raw); err != nil {
		return nil, fmt.Errorf("malformed assessment result: %w", err)
	}

	var result AssessmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode assessment result: %w", err)
	}
	if result.UserID == "" {
		result.UserID = userID
	}
	return &result, nil
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*Employee, error) {
	raw, err := c.getRawObject(ctx, "employees/me", nil)
	if err != nil {
		return nil, err
	}
	e := normalizeEmployee(raw)
	return &e, nil
}

// Positions fetches all positions with their match data.
func (c *Client) Positions(ctx context.Context) ([]Position, error) {
	rawItems, err := c.getRawList(ctx, "positions", nil)
	if err != nil {
		return nil, err
	}
	positions := make([]Position, 0, len(rawItems))
	for i, raw := range rawItems {
		positions = append(positions, normalizePosition(raw, i))
	}
	return positions, nil
}

// TopMatches fetches the candidate's best-matching positions.
func (c *Client) TopMatches(ctx context.Context, candidateID string, limit int) ([]Match, error) {
	q := url.Values{}
	q.Set("candidate_id", candidateID)
	q.Set("limit", strconv.Itoa(limit))
	rawItems, err := c.getRawList(ctx, "smart/positions/top", q)
	if err != nil {
		return nil, err
	}
	matches := make([]Match, 0, len(rawItems))
	for i, raw := range rawItems {
		matches = append(matches, normalizeMatch(raw, i))
	}
	return matches, nil
}

// UpdateLikedPositions replaces the employee's liked-positions list.
func (c *Client) UpdateLikedPositions(ctx context.Context, employeeID string, positionIDs []string) error {
	if positionIDs == nil {
		positionIDs = []string{}
	}
	return c.postJSON(ctx, "employees/"+employeeID+"/positions", struct {
		LikedPositions []string `json:"liked_positions"`
	}{LikedPositions: positionIDs})
}

// StarPosition marks one position as the employee's starred position.
func (c *Client) StarPosition(ctx context.Context, employeeID, positionID string) error {
	return c.postJSON(ctx, "employees/"+employeeID+"/positions", struct {
		StarPosition string `json:"star_position"`
	}{StarPosition: positionID})
}

func (c *Client) endpoint(path string) string {
	return c.BaseURL + "/" + path
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	resp, err := c.get(ctx, path, q)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// getRawObject decodes a response body into a loose map for
// normalization. UseNumber keeps ids and scores lossless until the
// normalizer coerces them.
func (c *Client) getRawObject(ctx context.Context, path string, q url.Values) (map[string]any, error) {
	resp, err := c.get(ctx, path, q)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw, nil
}

func (c *Client) getRawList(ctx context.Context, path string, q url.Values) ([]map[string]any, error) {
	resp, err := c.get(ctx, path, q)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	c.logger.Debug("api request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("api request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bad status: %s", resp.Status)
	}
	return nil
}
