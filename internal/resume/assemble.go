// Package resume merges generated resume content with the contact data the
// user typed in.
package resume

import (
	"strings"

	"github.com/khrees2412/cvexpress/pkg/models"
)

// Assemble builds the ResumeData for rendering. The contact block is always
// the UserInfo collected in the conversation; the generator never gets to
// change it.
func Assemble(info models.UserInfo, gen models.GeneratedResume) models.ResumeData {
	skills := make([]string, 0, len(gen.Skills))
	for _, skill := range gen.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	return models.ResumeData{
		Contact:    info,
		Summary:    strings.TrimSpace(gen.Summary),
		Experience: strings.TrimSpace(gen.Experience),
		Skills:     skills,
	}
}
