package models

// UserInfo holds the contact details collected during the conversation
type UserInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Job is one candidate posting returned by a search.
// ID is the 1-based position in the candidate list of the current search.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// Source is a grounding reference attached to search results for display only
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Label returns the title of the source, or its URI when the title is empty
func (s Source) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return s.URI
}

// SearchResult is the output of a job search
type SearchResult struct {
	Jobs    []Job    `json:"jobs"`
	Sources []Source `json:"sources"`
	// Degraded is set when the listings are the generic placeholders
	Degraded bool `json:"degraded,omitempty"`
}

// GeneratedResume holds the narrative fields produced by the language model
type GeneratedResume struct {
	Summary    string   `json:"summary"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}

// ResumeData is everything the PDF renderer needs
type ResumeData struct {
	Contact    UserInfo `json:"contact"`
	Summary    string   `json:"summary"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}
