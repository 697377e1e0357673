package chat

import "github.com/khrees2412/cvexpress/pkg/models"

// State is everything the conversation knows. The engine owns it; callers get
// copies through Engine.Snapshot.
type State struct {
	SessionID string
	Step      Step
	Messages  []Message
	UserInfo  models.UserInfo
	// ExperienceLog is everything the user said about their work history,
	// one answer per line
	ExperienceLog string
	CandidateJobs []models.Job
	Sources       []models.Source
	Resume        *models.ResumeData
	Loading       bool
	// AwaitingConsent is set while the greeting waits for Accept or Decline
	AwaitingConsent bool
}

func (s State) clone() State {
	out := s
	out.Messages = make([]Message, len(s.Messages))
	for i, m := range s.Messages {
		m.Payload = copyPayload(m.Payload)
		out.Messages[i] = m
	}
	out.CandidateJobs = append([]models.Job(nil), s.CandidateJobs...)
	out.Sources = append([]models.Source(nil), s.Sources...)
	if s.Resume != nil {
		r := *s.Resume
		r.Skills = append([]string(nil), s.Resume.Skills...)
		out.Resume = &r
	}
	return out
}

// lastMessage returns the most recent message, if any
func (s State) lastMessage() (Message, bool) {
	if len(s.Messages) == 0 {
		return Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}
