package recommend

import (
	"context"

	"github.com/Indrani-08/recosave-backend/models"
)

// Recommender produces a personalized scheme recommendation from a user
// profile. The Gemini-backed implementation lives in this package;
// handlers depend on the interface so tests can stub the external call.
type Recommender interface {
	Generate(ctx context.Context, user *models.User) (*RecommendationResult, error)
}

// RecommendationResult is the structured reply the model is constrained
// to produce. It is returned to the client verbatim and never persisted.
type RecommendationResult struct {
	Title              string              `json:"title"`
	SummaryAdvice      string              `json:"summary_advice"`
	RecommendedSchemes []RecommendedScheme `json:"recommended_schemes"`
}

// RecommendedScheme pairs a scheme with the reason it fits the profile.
type RecommendedScheme struct {
	SchemeName      string `json:"scheme_name"`
	RelevanceReason string `json:"relevance_reason"`
}

// Wire types for the generateContent endpoint.

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
