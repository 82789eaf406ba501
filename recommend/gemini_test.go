package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Indrani-08/recosave-backend/models"
)

func testProfile() *models.User {
	salary, age := 52000, 29
	gender := "female"
	goal := "retirement corpus"
	return &models.User{
		Salary:         &salary,
		Age:            &age,
		Gender:         &gender,
		InvestmentGoal: &goal,
	}
}

func testClient(apiKey, baseURL string) *GeminiClient {
	return NewGeminiClientWithConfig(GeminiConfig{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		RetryDelay: time.Millisecond,
	})
}

// candidateBody wraps text in the generateContent response envelope.
func candidateBody(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGenerateMissingCredentials(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := testClient("", server.URL)
	_, err := client.Generate(context.Background(), testProfile())

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "no HTTP call should be attempted without credentials")
}

func TestGenerateRetriesOnRateLimit(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), testProfile())

	assert.ErrorIs(t, err, ErrModelFailure)
	assert.EqualValues(t, 5, atomic.LoadInt32(&calls), "429 should be retried to exactly 5 total attempts")
}

func TestGenerateDoesNotRetryOtherErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), testProfile())

	assert.ErrorIs(t, err, ErrModelFailure)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "non-429 errors fail immediately")
}

func TestGenerateRecoversAfterRateLimit(t *testing.T) {
	result := RecommendationResult{
		Title:         "A Plan for Asha",
		SummaryAdvice: "Prioritize long-term tax-free schemes.",
		RecommendedSchemes: []RecommendedScheme{
			{SchemeName: "PPF", RelevanceReason: "Tax-free compounding fits a 29 year old."},
		},
	}
	resultJSON, err := json.Marshal(result)
	require.NoError(t, err)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(candidateBody(t, string(resultJSON)))
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	got, err := client.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
	assert.Equal(t, &result, got)
}

func TestGenerateRequestShape(t *testing.T) {
	var captured geminiRequest
	var path, key string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write(candidateBody(t, `{"title":"t","summary_advice":"s","recommended_schemes":[]}`))
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", path)
	assert.Equal(t, "test-key", key)
	require.NotNil(t, captured.SystemInstruction)
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, "RecoSave AI")
	require.Len(t, captured.Contents, 1)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "Age: 29 years")
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "retirement corpus")
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	assert.NotNil(t, captured.GenerationConfig.ResponseSchema["properties"])
}

func TestGenerateUnparseableReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateBody(t, "Here is some advice, but not as JSON."))
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := testClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrModelFailure)
}

func TestBackoffDelaysStrictlyIncrease(t *testing.T) {
	client := NewGeminiClientWithConfig(GeminiConfig{APIKey: "test-key"})

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
	for i, expected := range want {
		assert.Equal(t, expected, client.backoffDelay(i+1))
	}
	for attempt := 2; attempt <= 4; attempt++ {
		assert.Greater(t, client.backoffDelay(attempt), client.backoffDelay(attempt-1))
	}
}
