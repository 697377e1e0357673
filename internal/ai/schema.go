package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"github.com/khrees2412/cvexpress/pkg/models"
)

// resumeSchema constrains the model output for resume generation
var resumeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "Resumo profissional conciso e poderoso de 2 a 3 frases que destaque os pontos fortes do usuário em relação à vaga.",
		},
		"experience": {
			Type:        genai.TypeString,
			Description: "Experiência bruta do usuário reescrita em uma seção de 'experiência' profissional. Use bullet points (começando cada um com '• ') e incorpore palavras-chave da descrição da vaga. O resultado deve ser uma única string.",
		},
		"skills": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Lista de habilidades relevantes com base no texto do usuário e nos requisitos da vaga.",
		},
	},
	Required: []string{"summary", "experience", "skills"},
}

// resumeJSONSchema mirrors resumeSchema; responses are checked against it
// before decoding
const resumeJSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary", "experience", "skills"],
  "properties": {
    "summary": {"type": "string"},
    "experience": {"type": "string"},
    "skills": {"type": "array", "items": {"type": "string"}}
  }
}`

var resumeSchemaLoader = gojsonschema.NewStringLoader(resumeJSONSchema)

// FieldError is a single schema violation
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the schema violations of a generated document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// validateResumeJSON checks raw JSON against the resume schema
func validateResumeJSON(raw string) error {
	result, err := gojsonschema.Validate(resumeSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("failed to validate resume json: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// decodeResume cleans, validates and decodes a generated resume document
func decodeResume(raw string) (models.GeneratedResume, error) {
	cleaned := CleanJSONBlock(raw)
	if err := validateResumeJSON(cleaned); err != nil {
		return models.GeneratedResume{}, err
	}

	var gen models.GeneratedResume
	if err := json.Unmarshal([]byte(cleaned), &gen); err != nil {
		return models.GeneratedResume{}, fmt.Errorf("failed to decode resume json: %w", err)
	}
	return gen, nil
}

// CleanJSONBlock removes markdown code fences around a JSON document
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
