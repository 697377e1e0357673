package chat

import (
	"fmt"
	"strconv"
	"strings"
)

// Bot lines of the conversation
const (
	msgGreeting      = "Olá! Eu sou o Meu Currículo Express, seu assistente de carreira digital. Em poucos minutos, vamos criar um currículo poderoso para você. Vamos começar?"
	msgAccept        = "Sim, vamos lá!"
	msgDecline       = "Agora não"
	msgAskName       = "Primeiro, qual seu nome completo?"
	msgAskPhone      = "Ótimo! Agora, me diga seu telefone com DDD."
	msgAskEmail      = "Perfeito. E seu melhor e-mail?"
	msgAskLocation   = "Para finalizar os contatos, qual sua cidade e estado?"
	msgAskRole       = "Perfeito. Agora, vou usar essas informações para encontrar uma vaga para você. Qual o cargo ou área que você está procurando?"
	msgGoodbye       = "Tudo bem! Estarei aqui quando precisar. Até logo!"
	msgSourcesTitle  = "Fontes da pesquisa:"
	msgResumeReady   = "Pronto! Seu currículo profissional está pronto. Clique no botão para baixar. Lembre-se, para cada vaga nova, você pode voltar aqui e criar um currículo novo e otimizado."
	msgDownloadLabel = "Baixar meu Currículo em PDF"
	msgNotUnderstood = "Não entendi. Poderia repetir?"
	msgErrorPrefix   = "Desculpe, algo deu errado. "
	msgUnexpected    = "Ocorreu um erro inesperado."
)

const (
	valueAccept  = "sim"
	valueDecline = "nao"
)

func msgAskExperience(name string) string {
	if name == "" {
		name = "pessoa"
	}
	return fmt.Sprintf("Excelente, %s! Agora, a parte mais importante. Me conte, com suas palavras, o que você sabe fazer? Pense nas suas últimas experiências, mesmo que não tenham sido de carteira assinada.", name)
}

func msgAskMore(marker string) string {
	return fmt.Sprintf("Entendi. Você tem mais alguma experiência ou habilidade que gostaria de adicionar? Se não, apenas diga \"%s\".", marker)
}

func msgAddedMore(marker string) string {
	return fmt.Sprintf("Ok, adicionado! Algo mais? Se não, diga \"%s\".", marker)
}

func msgSearching(role, location string) string {
	return fmt.Sprintf("Ok, buscando vagas de \"%s\" em \"%s\"...", role, location)
}

func msgJobsFound(n int) string {
	if n == 1 {
		return "Encontrei esta vaga. Quer seguir com ela? (Digite 1)"
	}
	return fmt.Sprintf("Encontrei estas %d vagas. Qual delas te interessa mais? (Digite %s)", n, choiceRange(n))
}

func msgInvalidOption(n int) string {
	return fmt.Sprintf("Opção inválida. Por favor, digite %s.", choiceRange(n))
}

func msgJobChosen(company string) string {
	return fmt.Sprintf("Ótima escolha! Agora, a mágica acontece. Vou pegar tudo o que você me disse e criar um currículo focado nessa vaga da %s, destacando as palavras-chave importantes. Um momento...", company)
}

func msgFarewell(name string) string {
	return fmt.Sprintf("Muito sucesso na sua busca, %s! Estou aqui sempre que precisar. Boa sorte!", name)
}

// choiceRange lists the valid options as "1", "1 ou 2", "1, 2 ou 3"...
func choiceRange(n int) string {
	if n <= 1 {
		return "1"
	}
	nums := make([]string, n)
	for i := range nums {
		nums[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(nums[:n-1], ", ") + " ou " + nums[n-1]
}
