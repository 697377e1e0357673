package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/khrees2412/cvexpress/pkg/models"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	calls  int
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

const searchAnswer = `Aqui estão algumas vagas:

1. Vendedora - Loja A
Atendimento ao cliente e vendas.

2. Atendente - Loja B
Atendimento no balcão.

3. Caixa - Mercado C
Operação de caixa.`

func TestFindJobs(t *testing.T) {
	resp := textResponse(searchAnswer)
	resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://vagas.example/1", Title: "Vagas 1"}},
			{},
			{Web: &genai.GroundingChunkWeb{URI: "https://vagas.example/1", Title: "duplicate"}},
			{Web: &genai.GroundingChunkWeb{URI: "https://vagas.example/2"}},
		},
	}
	fake := &fakeGenerator{resp: resp}
	client := newClient(fake, Config{}, zerolog.Nop())

	result, err := client.FindJobs(context.Background(), "vendedora", "São Paulo")
	require.NoError(t, err)

	assert.Equal(t, DefaultSearchModel, fake.model)
	assert.Contains(t, fake.prompt, "'vendedora' em 'São Paulo'")
	require.NotNil(t, fake.config)
	require.Len(t, fake.config.Tools, 1)
	assert.NotNil(t, fake.config.Tools[0].GoogleSearch)

	require.Len(t, result.Jobs, 3)
	assert.Equal(t, "Loja B", result.Jobs[1].Company)
	assert.False(t, result.Degraded)
	assert.Equal(t, []models.Source{
		{URI: "https://vagas.example/1", Title: "Vagas 1"},
		{URI: "https://vagas.example/2"},
	}, result.Sources)
}

func TestFindJobs_UnparseableAnswerIsDegraded(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("Não encontrei nada.")}
	client := newClient(fake, Config{}, zerolog.Nop())

	result, err := client.FindJobs(context.Background(), "vendedora", "Recife")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Len(t, result.Jobs, 3)
	assert.Empty(t, result.Sources)
}

func TestFindJobs_Errors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		is   error
	}{
		{name: "api error", gen: &fakeGenerator{err: errors.New("quota exceeded")}},
		{name: "no candidates", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{}}, is: ErrNoCandidates},
		{name: "only thoughts", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "hmm", Thought: true}}}}},
		}}, is: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(tt.gen, Config{}, zerolog.Nop())

			_, err := client.FindJobs(context.Background(), "caixa", "Natal")
			require.Error(t, err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "Não consegui buscar as vagas. Tente novamente.", svcErr.UserMessage())
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGenerateResume(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("```json\n" +
		`{"summary": "Vendedora dedicada.", "experience": "• Atendimento ao cliente", "skills": ["Vendas", "Comunicação"]}` +
		"\n```")}
	client := newClient(fake, Config{ResumeModel: "gemini-test"}, zerolog.Nop())
	job := models.Job{ID: 2, Title: "Consultora", Company: "Magazine Luiza", Description: "Vendas"}

	gen, err := client.GenerateResume(context.Background(), "atendimento ao cliente", job)
	require.NoError(t, err)

	assert.Equal(t, "gemini-test", fake.model)
	assert.Contains(t, fake.prompt, `"atendimento ao cliente"`)
	assert.Contains(t, fake.prompt, `- Empresa: "Magazine Luiza"`)
	require.NotNil(t, fake.config)
	assert.Equal(t, "application/json", fake.config.ResponseMIMEType)
	assert.Equal(t, resumeSchema, fake.config.ResponseSchema)

	assert.Equal(t, models.GeneratedResume{
		Summary:    "Vendedora dedicada.",
		Experience: "• Atendimento ao cliente",
		Skills:     []string{"Vendas", "Comunicação"},
	}, gen)
}

func TestGenerateResume_InvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "missing skills", text: `{"summary": "a", "experience": "b"}`},
		{name: "skills not strings", text: `{"summary": "a", "experience": "b", "skills": [1, 2]}`},
		{name: "not json", text: "Aqui está o seu currículo!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(&fakeGenerator{resp: textResponse(tt.text)}, Config{}, zerolog.Nop())

			_, err := client.GenerateResume(context.Background(), "experiência", models.Job{ID: 1})
			require.Error(t, err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "Não consegui gerar o currículo. Tente novamente.", svcErr.UserMessage())
		})
	}
}

func TestValidateResumeJSON_ReportsFields(t *testing.T) {
	err := validateResumeJSON(`{"summary": "a"}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "experience")
	assert.Contains(t, err.Error(), "skills")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{"a": 1}`, want: `{"a": 1}`},
		{in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{in: "  \n{\"a\": 1}\n  ", want: `{"a": 1}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanJSONBlock(tt.in))
	}
}

func TestServiceError(t *testing.T) {
	cause := errors.New("boom")
	err := &ServiceError{Op: "search jobs", Message: msgSearchFailed, Err: cause}

	assert.Equal(t, "search jobs: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "search", (&ServiceError{Op: "search"}).Error())
}
