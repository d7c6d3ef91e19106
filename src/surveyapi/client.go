// Package surveyapi is the HTTP client for the upstream education-platform
// API. The backend wraps responses inconsistently (flat, one or two "data"
// envelopes deep), so identifier and timestamp extraction is deliberately
// tolerant; the helpers here are the only place that tolerance lives.
package surveyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"Backend-SurveyStudio/src/models"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL, e.g.
// "https://platform.example.com/api". No client-side timeout is set: once a
// submission is in flight it runs to completion.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// CreateResult is the decoded create-survey response. ID is empty when no
// recognizable identifier was found; the caller decides whether that is
// fatal.
type CreateResult struct {
	ID        string
	CreatedAt string
	Raw       map[string]interface{}
}

// PublishResult is the decoded publish response.
type PublishResult struct {
	PublishedAt string
	Raw         map[string]interface{}
}

// UploadFile posts one reference file as multipart form data and returns the
// durable URL the platform stored it under.
func (c *Client) UploadFile(ctx context.Context, token, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	raw, err := c.do(ctx, http.MethodPost, "/teacher/surveys/upload", token, &body, writer.FormDataContentType())
	if err != nil {
		return "", err
	}

	if url, ok := stringField(raw, "url"); ok {
		return url, nil
	}
	if nested, ok := raw["data"].(map[string]interface{}); ok {
		if url, ok := stringField(nested, "url"); ok {
			return url, nil
		}
	}
	return "", fmt.Errorf("upload response did not contain a file url")
}

// CreateSurvey posts the assembled survey payload.
func (c *Client) CreateSurvey(ctx context.Context, token string, payload models.SurveyPayload) (CreateResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return CreateResult{}, err
	}
	raw, err := c.do(ctx, http.MethodPost, "/teacher/surveys", token, bytes.NewReader(body), "application/json")
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{
		ID:        resolveSurveyID(raw),
		CreatedAt: resolveCreatedAt(raw),
		Raw:       raw,
	}, nil
}

// PublishSurvey publishes a created survey.
func (c *Client) PublishSurvey(ctx context.Context, token, surveyID string) (PublishResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/teacher/surveys/"+surveyID+"/publish", token, nil, "")
	if err != nil {
		return PublishResult{}, err
	}
	return PublishResult{
		PublishedAt: resolvePublishedAt(raw),
		Raw:         raw,
	}, nil
}

// UnpublishSurvey pulls a published survey back to draft.
func (c *Client) UnpublishSurvey(ctx context.Context, token, surveyID string) error {
	_, err := c.do(ctx, http.MethodPost, "/teacher/surveys/"+surveyID+"/unpublish", token, nil, "")
	return err
}

// DeleteSurvey removes a survey from the platform.
func (c *Client) DeleteSurvey(ctx context.Context, token, surveyID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/teacher/surveys/"+surveyID, token, nil, "")
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if len(data) > 0 {
		// Non-JSON bodies are tolerated; callers only look at known fields.
		_ = json.Unmarshal(data, &raw)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s %s: %s", method, path, errorMessage(resp.StatusCode, raw))
	}
	return raw, nil
}

// errorMessage digs the most specific message out of an error body. The
// platform uses "message", FastAPI-style handlers use "detail".
func errorMessage(status int, raw map[string]interface{}) string {
	for _, field := range []string{"message", "detail", "error"} {
		if msg, ok := stringField(raw, field); ok && msg != "" {
			return msg
		}
	}
	return http.StatusText(status)
}

// resolveSurveyID checks the three response shapes the platform is known to
// produce: {id}, {data:{id}} and {data:{data:{id}}}.
func resolveSurveyID(raw map[string]interface{}) string {
	if id, ok := stringField(raw, "id"); ok {
		return id
	}
	if data, ok := raw["data"].(map[string]interface{}); ok {
		if id, ok := stringField(data, "id"); ok {
			return id
		}
		if inner, ok := data["data"].(map[string]interface{}); ok {
			if id, ok := stringField(inner, "id"); ok {
				return id
			}
		}
	}
	return ""
}

func resolveCreatedAt(raw map[string]interface{}) string {
	if v, ok := stringField(raw, "created_at"); ok {
		return v
	}
	if data, ok := raw["data"].(map[string]interface{}); ok {
		if v, ok := stringField(data, "created_at"); ok {
			return v
		}
	}
	return ""
}

func resolvePublishedAt(raw map[string]interface{}) string {
	if data, ok := raw["data"].(map[string]interface{}); ok {
		if v, ok := stringField(data, "published_at"); ok {
			return v
		}
	}
	if v, ok := stringField(raw, "published_at"); ok {
		return v
	}
	return ""
}

// stringField reads a field as a string, accepting JSON numbers too since
// some backends return numeric ids.
func stringField(raw map[string]interface{}, key string) (string, bool) {
	if raw == nil {
		return "", false
	}
	switch v := raw[key].(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		return fmt.Sprintf("%.0f", v), true
	default:
		return "", false
	}
}
