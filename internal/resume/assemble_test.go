package resume

import (
	"testing"

	"github.com/khrees2412/cvexpress/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAssemble_ContactAlwaysFromUserInfo(t *testing.T) {
	info := models.UserInfo{
		Name:     "Ana",
		Phone:    "11999999999",
		Email:    "ana@x.com",
		Location: "São Paulo",
	}

	tests := []struct {
		name string
		gen  models.GeneratedResume
	}{
		{
			name: "hallucinated name in summary",
			gen: models.GeneratedResume{
				Summary:    "Maria Souza é uma vendedora experiente.",
				Experience: "• Atendimento ao cliente",
				Skills:     []string{"Vendas"},
			},
		},
		{
			name: "empty generation",
			gen:  models.GeneratedResume{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Assemble(info, tt.gen)
			assert.Equal(t, info, data.Contact)
		})
	}
}

func TestAssemble_TrimsGeneratedFields(t *testing.T) {
	gen := models.GeneratedResume{
		Summary:    "  Profissional dedicada.  \n",
		Experience: "\n• Atendimento\n• Caixa\n",
		Skills:     []string{" Vendas ", "", "   ", "Comunicação"},
	}

	data := Assemble(models.UserInfo{Name: "Ana"}, gen)

	assert.Equal(t, "Profissional dedicada.", data.Summary)
	assert.Equal(t, "• Atendimento\n• Caixa", data.Experience)
	assert.Equal(t, []string{"Vendas", "Comunicação"}, data.Skills)
}

func TestAssemble_DoesNotAliasSkills(t *testing.T) {
	gen := models.GeneratedResume{Skills: []string{"Vendas"}}

	data := Assemble(models.UserInfo{}, gen)
	gen.Skills[0] = "changed"

	assert.Equal(t, []string{"Vendas"}, data.Skills)
}
