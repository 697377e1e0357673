package matcher

import (
	"sort"

	"github.com/khrees2412/cvexpress/internal/textnorm"
	"github.com/khrees2412/cvexpress/pkg/models"
)

// Profile is what the user told us about themselves
type Profile struct {
	Role       string
	Location   string
	Experience string
}

// Match pairs a job with its score
type Match struct {
	Job   models.Job
	Score float64
}

// CalculateMatchScore calculates how well a job matches a user's profile
// Returns a score between 0.0 and 1.0
func CalculateMatchScore(job models.Job, profile Profile) float64 {
	score := 0.0
	weights := 0.0

	// Factor 1: Experience keywords in the job text (50% weight)
	if profile.Experience != "" {
		score += matchExperience(job, profile.Experience) * 0.5
		weights += 0.5
	}

	// Factor 2: Role keywords in the job title (30% weight)
	if profile.Role != "" {
		score += matchTitle(job, profile.Role) * 0.3
		weights += 0.3
	}

	// Factor 3: Location mentioned in the description (20% weight)
	if profile.Location != "" {
		score += matchLocation(job, profile.Location) * 0.2
		weights += 0.2
	}

	// Normalize if we didn't have all factors
	if weights == 0 {
		return 0.5
	}
	return score / weights
}

// Rank scores every job and sorts them best first. Ties keep the original
// order.
func Rank(jobs []models.Job, profile Profile) []Match {
	matches := make([]Match, len(jobs))
	for i, job := range jobs {
		matches[i] = Match{Job: job, Score: CalculateMatchScore(job, profile)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// matchExperience is the share of experience keywords found in the job
func matchExperience(job models.Job, experience string) float64 {
	keywords := extractKeywords(experience)
	if len(keywords) == 0 {
		return 0.5
	}

	jobWords := wordSet(job.Title + " " + job.Description)
	if len(jobWords) == 0 {
		return 0.5 // Neutral if no description
	}

	matched := 0
	for _, keyword := range keywords {
		if jobWords[keyword] {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// matchTitle checks if the job title shares keywords with the wanted role
func matchTitle(job models.Job, role string) float64 {
	if job.Title == "" {
		return 0.5
	}

	roleKeywords := extractKeywords(role)
	if len(roleKeywords) == 0 {
		return 0.5
	}

	titleWords := extractKeywords(job.Title)
	matched := 0
	for _, keyword := range roleKeywords {
		for _, word := range titleWords {
			if sameStem(keyword, word) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(roleKeywords))
}

// matchLocation checks if the job mentions the user's city
func matchLocation(job models.Job, location string) float64 {
	text := job.Title + " " + job.Description + " " + job.Company
	if textnorm.Contains(text, location) {
		return 1.0
	}

	// Partial match (same city or state)
	jobWords := wordSet(text)
	for _, part := range textnorm.Words(location) {
		if len(part) > 3 && jobWords[part] {
			return 0.8
		}
	}

	// Remote jobs work from anywhere
	if jobWords["remoto"] || jobWords["remota"] || jobWords["remote"] || jobWords["home"] {
		return 0.8
	}

	return 0.5 // Postings rarely repeat the city, so stay neutral
}

// sameStem treats "vendedora" and "vendedor" as the same keyword
func sameStem(a, b string) bool {
	if a == b {
		return true
	}
	const minStem = 5
	n := min(len(a), len(b))
	if n < minStem {
		return false
	}
	prefix := n - 1
	return a[:prefix] == b[:prefix]
}

var stopWords = map[string]bool{
	"para": true, "como": true, "mais": true, "muito": true, "pelo": true,
	"pela": true, "com": true, "sem": true, "uma": true, "umas": true,
	"uns": true, "dos": true, "das": true, "nos": true, "nas": true,
	"que": true, "por": true, "entre": true, "sobre": true, "isso": true,
	"esse": true, "essa": true, "este": true, "esta": true, "tambem": true,
	"trabalhei": true, "trabalho": true, "anos": true, "experiencia": true,
}

// extractKeywords extracts meaningful keywords from free text
func extractKeywords(text string) []string {
	seen := make(map[string]bool)
	keywords := []string{}

	for _, word := range textnorm.Words(text) {
		if len(word) > 3 && !stopWords[word] && !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}

	return keywords
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range textnorm.Words(text) {
		set[word] = true
	}
	return set
}
