package ai

import (
	"fmt"

	"github.com/khrees2412/cvexpress/pkg/models"
)

// buildSearchPrompt asks for three postings as a numbered list of
// "Title - Company" headers followed by a description paragraph.
func buildSearchPrompt(role, location string) string {
	return fmt.Sprintf(`Encontre 3 vagas de emprego para '%s' em '%s'. Para cada vaga, forneça o título do cargo, o nome da empresa e uma breve descrição da vaga em um parágrafo. Formate como uma lista numerada, com o cabeçalho de cada item no formato "Título - Empresa" e a descrição na linha seguinte. Não inclua links.`,
		role, location)
}

// buildResumePrompt only asks for the narrative fields; contact data is never
// sent for rewriting.
func buildResumePrompt(experience string, job models.Job) string {
	return fmt.Sprintf(`Você é o 'Meu Currículo Express', um coach de carreira digital. Sua tarefa é gerar o conteúdo para um currículo profissional com base nas informações do usuário e na vaga de emprego alvo.

Descrição da experiência e habilidades do usuário (texto livre):
"%s"

Vaga de emprego alvo:
- Cargo: "%s"
- Empresa: "%s"
- Descrição da vaga: "%s"

Com base nisso, crie o seguinte conteúdo:
1. Um "summary" (resumo) profissional conciso e poderoso de 2 a 3 frases que destaque os pontos fortes do usuário em relação à vaga.
2. Uma "experience" (experiência) profissional, reescrevendo a experiência bruta do usuário. Use bullet points (começando cada um com '• ') e incorpore palavras-chave da descrição da vaga. O resultado deve ser uma única string.
3. Uma lista de "skills" (habilidades) relevantes com base no texto do usuário e nos requisitos da vaga.`,
		experience, job.Title, job.Company, job.Description)
}
