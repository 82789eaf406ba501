// Package recommend builds the RecoSave consultation prompt, calls the
// Gemini generateContent endpoint with a fixed response schema, and
// parses the structured reply.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Indrani-08/recosave-backend/models"
)

// User-visible failure results. These are the whole error surface the
// client ever sees; upstream detail stays in the server log.
var (
	ErrNotConfigured = errors.New("AI service credentials are not configured.")
	ErrModelFailure  = errors.New("Failed to get a valid response from the AI model.")
	ErrParseFailure  = errors.New("Failed to generate structured AI response.")
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"

	// Per-attempt budget for the external call.
	requestTimeout = 45 * time.Second

	// Rate-limit retry policy: up to 5 attempts total, delays doubling
	// from 1 second.
	maxAttempts       = 5
	initialRetryDelay = time.Second
)

const systemPrompt = "You are 'RecoSave AI', an expert financial advisor specializing in government savings schemes for salaried individuals in India. " +
	"Your goal is to analyze the user's profile data (salary, age, gender, and goal) and provide personalized advice. " +
	"Critically evaluate the schemes that are most relevant to their specific demographics and needs. " +
	"Your final output MUST strictly adhere to the provided JSON schema."

// GeminiConfig holds the knobs for a GeminiClient.
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	RetryDelay time.Duration
}

// GeminiClient implements Recommender against the Gemini API.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewGeminiClient builds a client from GEMINI_API_KEY and GEMINI_MODEL.
// A missing key does not fail here; Generate degrades to an immediate
// error result so the rest of the API keeps working.
func NewGeminiClient() *GeminiClient {
	return NewGeminiClientWithConfig(GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	})
}

// NewGeminiClientWithConfig builds a client with custom settings.
// Zero-value fields fall back to the defaults.
func NewGeminiClientWithConfig(config GeminiConfig) *GeminiClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = requestTimeout
	}
	retryDelay := config.RetryDelay
	if retryDelay == 0 {
		retryDelay = initialRetryDelay
	}

	return &GeminiClient{
		apiKey:     config.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: retryDelay,
	}
}

// Generate produces a structured recommendation for the user's profile.
func (c *GeminiClient) Generate(ctx context.Context, user *models.User) (*RecommendationResult, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: buildUserQuery(user)}},
			},
		},
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	}

	text, err := c.call(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	var result RecommendationResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Error parsing AI response: %v", err)
		return nil, ErrParseFailure
	}
	return &result, nil
}

// call POSTs the payload to generateContent and returns the text of the
// first candidate. Only HTTP 429 is retried; every other failure class
// returns immediately.
func (c *GeminiClient) call(ctx context.Context, reqBody geminiRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(c.backoffDelay(attempt))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("Gemini request error: %v", err)
			return "", ErrModelFailure
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			log.Printf("Gemini response read error: %v", err)
			return "", ErrModelFailure
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			log.Printf("Gemini rate limited (attempt %d/%d)", attempt+1, maxAttempts)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			log.Printf("Gemini HTTP error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			return "", ErrModelFailure
		}

		var geminiResp geminiResponse
		if err := json.Unmarshal(body, &geminiResp); err != nil {
			log.Printf("Error parsing AI response: %v", err)
			return "", ErrParseFailure
		}
		if geminiResp.Error != nil {
			log.Printf("Gemini API error: %s", geminiResp.Error.Message)
			return "", ErrModelFailure
		}
		if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
			return "", ErrModelFailure
		}

		var text strings.Builder
		for _, part := range geminiResp.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		return strings.TrimSpace(text.String()), nil
	}

	return "", ErrModelFailure
}

// backoffDelay returns the sleep before the given retry attempt:
// retryDelay doubling per attempt (1s, 2s, 4s, 8s by default).
func (c *GeminiClient) backoffDelay(attempt int) time.Duration {
	return c.retryDelay * time.Duration(1<<uint(attempt-1))
}

func buildUserQuery(user *models.User) string {
	return fmt.Sprintf(
		"Analyze the following user profile data and provide a personalized financial consultation and scheme recommendation. "+
			"User Profile: "+
			"  - Age: %s years\n"+
			"  - Gender: %s\n"+
			"  - Monthly Salary (Gross): %s\n"+
			"  - Investment Goal: %s\n\n"+
			"Based on this, recommend 2-3 government savings schemes. For each, provide a brief, easy-to-understand explanation of why it is a good fit for this specific user's age, gender, and salary bracket.",
		intField(user.Age), strField(user.Gender), intField(user.Salary), strField(user.InvestmentGoal),
	)
}

func intField(v *int) string {
	if v == nil {
		return "not specified"
	}
	return fmt.Sprintf("%d", *v)
}

func strField(v *string) string {
	if v == nil || *v == "" {
		return "not specified"
	}
	return *v
}

func responseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "STRING",
				"description": "A compelling, personalized title for the financial advice.",
			},
			"summary_advice": map[string]interface{}{
				"type":        "STRING",
				"description": "A 2-3 sentence conversational summary of the overall financial strategy.",
			},
			"recommended_schemes": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"scheme_name": map[string]interface{}{
							"type":        "STRING",
							"description": "The name of the government savings scheme (e.g., PPF, SCSS).",
						},
						"relevance_reason": map[string]interface{}{
							"type":        "STRING",
							"description": "A concise explanation (1-2 sentences) of why this scheme specifically matches the user's profile.",
						},
					},
					"propertyOrdering": []string{"scheme_name", "relevance_reason"},
				},
			},
		},
		"propertyOrdering": []string{"title", "summary_advice", "recommended_schemes"},
	}
}
