package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khrees2412/cvexpress/internal/chat"
	"github.com/khrees2412/cvexpress/pkg/models"
)

type stubFinder struct{}

func (stubFinder) FindJobs(context.Context, string, string) (models.SearchResult, error) {
	return models.SearchResult{
		Jobs: []models.Job{
			{ID: 1, Title: "Vendedora de Loja", Company: "Lojas Renner", Description: "Vendas."},
			{ID: 2, Title: "Consultora de Vendas", Company: "Magazine Luiza", Description: "Vendas."},
			{ID: 3, Title: "Vendedora Interna", Company: "Natura", Description: "Vendas."},
		},
		Sources: []models.Source{{URI: "https://vagas.example/1", Title: "Vagas SP"}},
	}, nil
}

type stubWriter struct{}

func (stubWriter) GenerateResume(context.Context, string, models.Job) (models.GeneratedResume, error) {
	return models.GeneratedResume{Summary: "Resumo.", Experience: "• Vendas", Skills: []string{"Vendas"}}, nil
}

type fakeExporter struct {
	calls int
	data  models.ResumeData
	dir   string
	err   error
}

func (f *fakeExporter) Export(data models.ResumeData, dir string) (string, error) {
	f.calls++
	f.data = data
	f.dir = dir
	if f.err != nil {
		return "", f.err
	}
	return dir + "/Ana_CV.pdf", nil
}

func newEngine() *chat.Engine {
	return chat.New(stubFinder{}, stubWriter{}, chat.WithGreetingDelay(0), chat.WithPromptDelay(0))
}

func run(t *testing.T, input string, exporter *fakeExporter) (*chat.Engine, string) {
	t.Helper()
	engine := newEngine()
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out, engine, exporter, WithOutputDir("/tmp/cvs"))

	require.NoError(t, p.Run(context.Background()))
	return engine, out.String()
}

const fullConversation = "1\nAna\n11999999999\nana@x.com\nSão Paulo\natendimento ao cliente\nsó isso\nvendedora\n2\n"

func TestRun_FullConversation(t *testing.T) {
	exporter := &fakeExporter{}

	engine, out := run(t, fullConversation+"\n", exporter)

	assert.Equal(t, chat.StepDone, engine.Snapshot().Step)
	assert.Contains(t, out, "Meu Currículo Express")
	assert.Contains(t, out, "Primeiro, qual seu nome completo?")
	assert.Contains(t, out, "Encontrei estas 3 vagas")
	assert.Contains(t, out, "2. Consultora de Vendas - Magazine Luiza")
	assert.Contains(t, out, "Fontes da pesquisa:")
	assert.Contains(t, out, "Vagas SP <https://vagas.example/1>")
	assert.Contains(t, out, "[ Baixar meu Currículo em PDF ]")
	assert.Contains(t, out, "PDF salvo em /tmp/cvs/Ana_CV.pdf")
	assert.Contains(t, out, "Digite /pdf para salvar o currículo de novo")

	require.Equal(t, 1, exporter.calls)
	assert.Equal(t, "/tmp/cvs", exporter.dir)
	assert.Equal(t, models.UserInfo{Name: "Ana", Phone: "11999999999", Email: "ana@x.com", Location: "São Paulo"}, exporter.data.Contact)
}

func TestRun_SkipDownload(t *testing.T) {
	exporter := &fakeExporter{}

	_, out := run(t, fullConversation+"n\n", exporter)

	assert.Zero(t, exporter.calls)
	assert.Contains(t, out, "o PDF não foi salvo")
}

func TestRun_SaveLaterWithPDFCommand(t *testing.T) {
	exporter := &fakeExporter{}

	_, out := run(t, fullConversation+"n\n/pdf\n/pdf\n", exporter)

	assert.Contains(t, out, "Digite /pdf quando quiser salvar.")
	assert.Equal(t, 2, exporter.calls)
	assert.Equal(t, "Ana", exporter.data.Contact.Name)
	assert.Equal(t, 2, strings.Count(out, "PDF salvo em /tmp/cvs/Ana_CV.pdf"))
}

func TestRun_PDFCommandBeforeResume(t *testing.T) {
	exporter := &fakeExporter{}

	engine, out := run(t, "1\nAna\n/pdf\n", exporter)

	assert.Zero(t, exporter.calls)
	assert.Contains(t, out, "Ainda não há currículo para salvar.")
	assert.Equal(t, chat.StepPhone, engine.Snapshot().Step, "/pdf is not sent to the conversation")
}

func TestRun_ExportFailure(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("disk full")}

	_, out := run(t, fullConversation+"s\n", exporter)

	assert.Equal(t, 1, exporter.calls)
	assert.Contains(t, out, "Não consegui salvar o PDF: disk full")
}

func TestRun_Decline(t *testing.T) {
	engine, out := run(t, "agora não\n", &fakeExporter{})

	assert.Equal(t, chat.StepDeclined, engine.Snapshot().Step)
	assert.Contains(t, out, "Tudo bem! Estarei aqui quando precisar. Até logo!")
}

func TestRun_UnknownConsentAnswer(t *testing.T) {
	engine, out := run(t, "talvez\n", &fakeExporter{})

	s := engine.Snapshot()
	assert.True(t, s.AwaitingConsent)
	assert.Equal(t, chat.StepName, s.Step)
	assert.Contains(t, out, "Digite 1 para começar ou 2 para sair.")
}

func TestRun_Quit(t *testing.T) {
	engine, out := run(t, "1\n/sair\nAna\n", &fakeExporter{})

	assert.Empty(t, engine.Snapshot().UserInfo.Name)
	assert.Contains(t, out, "Até logo!")
}

func TestRun_Restart(t *testing.T) {
	engine, out := run(t, "1\nAna\n/reiniciar\n", &fakeExporter{})

	s := engine.Snapshot()
	assert.Equal(t, chat.StepName, s.Step)
	assert.True(t, s.AwaitingConsent)
	assert.Empty(t, s.UserInfo.Name)
	assert.Contains(t, out, "--- nova conversa ---")
	assert.Equal(t, 2, strings.Count(out, "Olá! Eu sou o Meu Currículo Express"))
}

func TestRun_CancelledContext(t *testing.T) {
	engine := newEngine()
	p := New(strings.NewReader("1\n"), &bytes.Buffer{}, engine, &fakeExporter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
}

func TestObserve_TypingIndicator(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, newEngine(), &fakeExporter{})

	p.Observe(chat.State{SessionID: "a", Loading: true})
	p.Observe(chat.State{SessionID: "a", Loading: true})
	p.Observe(chat.State{SessionID: "a"})

	assert.Equal(t, 1, strings.Count(out.String(), "digitando..."))
}

func TestObserve_RendersOnlyNewBotMessages(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out, newEngine(), &fakeExporter{})
	s := chat.State{SessionID: "a", Messages: []chat.Message{
		{ID: 1, Sender: chat.SenderBot, Payload: chat.Text{Body: "primeira"}},
		{ID: 2, Sender: chat.SenderUser, Payload: chat.Text{Body: "digitado"}},
	}}

	p.Observe(s)
	p.Observe(s)

	assert.Equal(t, 1, strings.Count(out.String(), "primeira"))
	assert.NotContains(t, out.String(), "digitado")
}

func TestConsentChoice(t *testing.T) {
	tests := []struct {
		in   string
		want choice
	}{
		{in: "1", want: choiceAccept},
		{in: " Sim ", want: choiceAccept},
		{in: "Sim, vamos lá!", want: choiceAccept},
		{in: "2", want: choiceDecline},
		{in: "não", want: choiceDecline},
		{in: "Agora não", want: choiceDecline},
		{in: "Ana", want: choiceUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, consentChoice(tt.in), tt.in)
	}
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "[1] Sim, vamos lá!", optionLabel(0, chat.Option{Label: "Sim, vamos lá!"}))
	assert.Equal(t, "2. Caixa - Mercado", optionLabel(1, chat.Option{Label: "2. Caixa - Mercado"}))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "https://a.example", sourceLabel(models.Source{URI: "https://a.example"}))
	assert.Equal(t, "Vagas <https://a.example>", sourceLabel(models.Source{URI: "https://a.example", Title: "Vagas"}))
}
