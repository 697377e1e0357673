package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrMissingAPIKey   = errors.New("gemini api key not configured. Run: cvexpress config set gemini_api_key YOUR_KEY (or export GEMINI_API_KEY)")
	ErrInvalidArgument = errors.New("invalid argument")
)
