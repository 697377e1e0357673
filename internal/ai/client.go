// Package ai talks to the Gemini API to search for job postings and to write
// the narrative parts of a resume.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/khrees2412/cvexpress/internal/parser"
	"github.com/khrees2412/cvexpress/pkg/models"
)

const (
	DefaultSearchModel = "gemini-2.5-flash"
	DefaultResumeModel = "gemini-2.5-pro"
)

// generator is the subset of *genai.Models used by Client
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config selects the credentials and models for a Client
type Config struct {
	APIKey      string
	SearchModel string
	ResumeModel string
}

// Client searches for jobs and generates resume content
type Client struct {
	models      generator
	searchModel string
	resumeModel string
	log         zerolog.Logger
}

// NewClient creates a Gemini-backed client
func NewClient(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newClient(gc.Models, cfg, log), nil
}

func newClient(g generator, cfg Config, log zerolog.Logger) *Client {
	if cfg.SearchModel == "" {
		cfg.SearchModel = DefaultSearchModel
	}
	if cfg.ResumeModel == "" {
		cfg.ResumeModel = DefaultResumeModel
	}
	return &Client{
		models:      g,
		searchModel: cfg.SearchModel,
		resumeModel: cfg.ResumeModel,
		log:         log.With().Str("component", "ai").Logger(),
	}
}

// FindJobs asks the search model, with Google Search grounding, for postings
// matching role and location. Unparseable answers degrade to the placeholder
// listings instead of failing.
func (c *Client) FindJobs(ctx context.Context, role, location string) (models.SearchResult, error) {
	c.log.Debug().Str("role", role).Str("location", location).Msg("searching jobs")

	resp, err := c.models.GenerateContent(ctx, c.searchModel,
		genai.Text(buildSearchPrompt(role, location)),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		return models.SearchResult{}, &ServiceError{Op: "search jobs", Message: msgSearchFailed, Err: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return models.SearchResult{}, &ServiceError{Op: "search jobs", Message: msgSearchFailed, Err: err}
	}

	parsed := parser.Parse(text)
	if parsed.Tier == parser.TierFallback {
		c.log.Warn().Str("role", role).Msg("could not parse job listings, using placeholders")
	}

	result := models.SearchResult{
		Jobs:     parsed.Jobs,
		Sources:  extractSources(resp),
		Degraded: parsed.Tier == parser.TierFallback,
	}
	c.log.Info().
		Int("jobs", len(result.Jobs)).
		Int("sources", len(result.Sources)).
		Str("tier", parsed.Tier.String()).
		Msg("job search finished")
	return result, nil
}

// GenerateResume writes the summary, experience and skills for the chosen
// job. Contact details are never part of the request.
func (c *Client) GenerateResume(ctx context.Context, experience string, job models.Job) (models.GeneratedResume, error) {
	c.log.Debug().Int("job_id", job.ID).Str("title", job.Title).Msg("generating resume")

	resp, err := c.models.GenerateContent(ctx, c.resumeModel,
		genai.Text(buildResumePrompt(experience, job)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   resumeSchema,
		},
	)
	if err != nil {
		return models.GeneratedResume{}, &ServiceError{Op: "generate resume", Message: msgGenerationFailed, Err: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return models.GeneratedResume{}, &ServiceError{Op: "generate resume", Message: msgGenerationFailed, Err: err}
	}

	gen, err := decodeResume(text)
	if err != nil {
		c.log.Error().Err(err).Str("raw", text).Msg("invalid resume document")
		return models.GeneratedResume{}, &ServiceError{Op: "generate resume", Message: msgGenerationFailed, Err: err}
	}
	return gen, nil
}

// extractText joins the text parts of the first candidate, skipping thoughts
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		parts = append(parts, part.Text)
	}
	if len(parts) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.Join(parts, ""), nil
}

// extractSources collects the web references from grounding metadata,
// dropping entries without a URI and duplicates
func extractSources(resp *genai.GenerateContentResponse) []models.Source {
	sources := []models.Source{}
	if resp == nil || len(resp.Candidates) == 0 {
		return sources
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}

	seen := make(map[string]bool)
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		if seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true
		sources = append(sources, models.Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}
