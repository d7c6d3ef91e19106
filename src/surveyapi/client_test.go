package surveyapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-SurveyStudio/src/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL), server
}

func TestUploadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("EnvelopedURL", func(t *testing.T) {
		var gotAuth, gotFilename string
		var gotData []byte
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.Equal(t, "/teacher/surveys/upload", r.URL.Path)
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			gotFilename = header.Filename
			gotData, _ = io.ReadAll(file)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"url": "https://cdn.example.com/a.pdf"},
			})
		})
		defer server.Close()

		url, err := client.UploadFile(ctx, "tok", "a.pdf", []byte("pdf-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.pdf", url)
		assert.Equal(t, "Bearer tok", gotAuth)
		assert.Equal(t, "a.pdf", gotFilename)
		assert.Equal(t, []byte("pdf-bytes"), gotData)
	})

	t.Run("FlatURL", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"url": "https://cdn.example.com/b.pdf"})
		})
		defer server.Close()

		url, err := client.UploadFile(ctx, "tok", "b.pdf", nil)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/b.pdf", url)
	})

	t.Run("NoURLInResponse", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
		})
		defer server.Close()

		_, err := client.UploadFile(ctx, "tok", "c.pdf", nil)
		assert.Error(t, err)
	})
}

func TestCreateSurveyResolvesIdentifier(t *testing.T) {
	ctx := context.Background()
	payload := models.SurveyPayload{Title: "Quiz"}

	cases := []struct {
		name     string
		response map[string]interface{}
		wantID   string
	}{
		{"Flat", map[string]interface{}{"id": "sv-1"}, "sv-1"},
		{"OneEnvelope", map[string]interface{}{
			"data": map[string]interface{}{"id": "sv-2"},
		}, "sv-2"},
		{"TwoEnvelopes", map[string]interface{}{
			"data": map[string]interface{}{
				"data": map[string]interface{}{"id": "sv-3"},
			},
		}, "sv-3"},
		{"NumericID", map[string]interface{}{"id": 42}, "42"},
		{"Missing", map[string]interface{}{"code": 200}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/teacher/surveys", r.URL.Path)
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var got models.SurveyPayload
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "Quiz", got.Title)
				json.NewEncoder(w).Encode(tc.response)
			})
			defer server.Close()

			result, err := client.CreateSurvey(ctx, "tok", payload)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, result.ID)
			assert.NotNil(t, result.Raw)
		})
	}
}

func TestCreateSurveyResolvesCreatedAt(t *testing.T) {
	ctx := context.Background()
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id":         "sv-1",
				"created_at": "2026-02-01T09:30:00Z",
			},
		})
	})
	defer server.Close()

	result, err := client.CreateSurvey(ctx, "tok", models.SurveyPayload{Title: "Quiz"})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01T09:30:00Z", result.CreatedAt)
}

func TestPublishSurvey(t *testing.T) {
	ctx := context.Background()

	t.Run("EnvelopedTimestamp", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/teacher/surveys/sv-1/publish", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": map[string]interface{}{"published_at": "2026-02-01T10:00:00Z"},
			})
		})
		defer server.Close()

		result, err := client.PublishSurvey(ctx, "tok", "sv-1")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01T10:00:00Z", result.PublishedAt)
	})

	t.Run("FlatTimestamp", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"published_at": "2026-02-02"})
		})
		defer server.Close()

		result, err := client.PublishSurvey(ctx, "tok", "sv-1")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-02", result.PublishedAt)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		defer server.Close()

		result, err := client.PublishSurvey(ctx, "tok", "sv-1")
		require.NoError(t, err)
		assert.Empty(t, result.PublishedAt)
	})
}

func TestErrorMessageExtraction(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		body map[string]interface{}
		want string
	}{
		{"Message", map[string]interface{}{"message": "title already in use"}, "title already in use"},
		{"Detail", map[string]interface{}{"detail": "not authorized"}, "not authorized"},
		{"Error", map[string]interface{}{"error": "boom"}, "boom"},
		{"Fallback", map[string]interface{}{}, "Unprocessable Entity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(tc.body)
			})
			defer server.Close()

			_, err := client.CreateSurvey(ctx, "tok", models.SurveyPayload{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDeleteAndUnpublish(t *testing.T) {
	ctx := context.Background()
	var method, path string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	require.NoError(t, client.UnpublishSurvey(ctx, "tok", "sv-1"))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/teacher/surveys/sv-1/unpublish", path)

	require.NoError(t, client.DeleteSurvey(ctx, "tok", "sv-1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/teacher/surveys/sv-1", path)
}
