package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "só isso", want: "so isso"},
		{in: "SÓ ISSO", want: "so isso"},
		{in: "Experiência Profissional", want: "experiencia profissional"},
		{in: "Garçom", want: "garcom"},
		{in: "plain", want: "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fold(tt.in), tt.in)
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Acho que é SÓ ISSO.", "só isso"))
	assert.False(t, Contains("só", "só isso"))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"atendimento", "ao", "cliente", "vendas", "2"}, Words("Atendimento ao cliente; vendas (2)!"))
	assert.Empty(t, Words(" ... "))
}
