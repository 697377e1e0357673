package chat

import (
	"context"
	"regexp"
	"strconv"

	"github.com/khrees2412/cvexpress/internal/resume"
)

// transition handles the input for one step. A returned error is shown to the
// user and leaves the step where the transition put it.
type transition func(ctx context.Context, input string) error

func (e *Engine) transitionTable() map[Step]transition {
	return map[Step]transition{
		StepName:           e.onName,
		StepPhone:          e.onPhone,
		StepEmail:          e.onEmail,
		StepLocation:       e.onLocation,
		StepExperience:     e.onExperience,
		StepMoreExperience: e.onMoreExperience,
		StepRole:           e.onRole,
		StepChooseJob:      e.onChooseJob,
	}
}

func (e *Engine) onName(_ context.Context, input string) error {
	e.state.UserInfo.Name = input
	e.bot(Text{Body: msgAskPhone})
	e.setStep(StepPhone)
	return nil
}

func (e *Engine) onPhone(_ context.Context, input string) error {
	e.state.UserInfo.Phone = input
	e.bot(Text{Body: msgAskEmail})
	e.setStep(StepEmail)
	return nil
}

func (e *Engine) onEmail(_ context.Context, input string) error {
	e.state.UserInfo.Email = input
	e.bot(Text{Body: msgAskLocation})
	e.setStep(StepLocation)
	return nil
}

func (e *Engine) onLocation(_ context.Context, input string) error {
	e.state.UserInfo.Location = input
	e.bot(Text{Body: msgAskExperience(e.state.UserInfo.Name)})
	e.setStep(StepExperience)
	return nil
}

func (e *Engine) onExperience(_ context.Context, input string) error {
	e.appendExperience(input)
	e.bot(Text{Body: msgAskMore(e.doneMarker)})
	e.setStep(StepMoreExperience)
	return nil
}

func (e *Engine) onMoreExperience(_ context.Context, input string) error {
	if containsMarker(input, e.doneMarker) {
		e.bot(Text{Body: msgAskRole})
		e.setStep(StepRole)
		return nil
	}
	e.appendExperience(input)
	e.bot(Text{Body: msgAddedMore(e.doneMarker)})
	return nil
}

func (e *Engine) appendExperience(text string) {
	if e.state.ExperienceLog == "" {
		e.state.ExperienceLog = text
		return
	}
	e.state.ExperienceLog += "\n" + text
}

func (e *Engine) onRole(ctx context.Context, role string) error {
	location := e.state.UserInfo.Location
	e.bot(Text{Body: msgSearching(role, location)})

	result, err := e.finder.FindJobs(ctx, role, location)
	if err != nil {
		return err
	}
	if len(result.Jobs) == 0 {
		return ErrNoJobs
	}
	if result.Degraded {
		e.log.Warn().Str("session", e.state.SessionID).Str("role", role).Msg("showing placeholder jobs")
	}

	e.state.CandidateJobs = result.Jobs
	e.state.Sources = result.Sources

	options := make([]Option, len(result.Jobs))
	for i, job := range result.Jobs {
		options[i] = Option{
			Label: strconv.Itoa(job.ID) + ". " + job.Title + " - " + job.Company,
			Value: strconv.Itoa(i + 1),
		}
	}
	e.bot(OptionList{Prompt: msgJobsFound(len(result.Jobs)), Options: options})
	if len(result.Sources) > 0 {
		e.bot(SourceList{Title: msgSourcesTitle, Sources: result.Sources})
	}
	e.setStep(StepChooseJob)
	return nil
}

func (e *Engine) onChooseJob(ctx context.Context, input string) error {
	jobs := e.state.CandidateJobs
	n, ok := parseChoice(input)
	if !ok || n < 1 || n > len(jobs) {
		e.bot(Text{Body: msgInvalidOption(len(jobs))})
		return nil
	}
	job := jobs[n-1]

	e.bot(Text{Body: msgJobChosen(job.Company)})
	e.setStep(StepGenerating)

	gen, err := e.writer.GenerateResume(ctx, e.state.ExperienceLog, job)
	if err != nil {
		// Let the user pick again instead of leaving the conversation at 9.
		e.log.Warn().Str("session", e.state.SessionID).Int("job_id", job.ID).Msg("resume generation failed, back to job choice")
		e.setStep(StepChooseJob)
		return err
	}

	data := resume.Assemble(e.state.UserInfo, gen)
	e.state.Resume = &data

	e.bot(Text{Body: msgResumeReady})
	e.bot(ActionButton{Label: msgDownloadLabel, Action: ActionDownloadPDF})
	e.bot(Text{Body: msgFarewell(e.state.UserInfo.Name)})
	e.setStep(StepDone)
	return nil
}

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// parseChoice reads the number at the start of input, so "2", "2." and
// "2 - Magazine Luiza" all pick the second option
func parseChoice(input string) (int, bool) {
	digits := leadingInt.FindString(input)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
