package models

import (
	"strings"
	"time"
)

// ChallengePhase represents where a challenge is in its lifecycle
type ChallengePhase string

const (
	// ChallengePhaseWaitingPrompt indicates no prompt has been written yet
	ChallengePhaseWaitingPrompt ChallengePhase = "waiting_prompt"

	// ChallengePhasePromptCreated indicates a prompt exists but no image yet
	ChallengePhasePromptCreated ChallengePhase = "prompt_created"

	// ChallengePhaseImageGenerated indicates the image is ready for guessing
	ChallengePhaseImageGenerated ChallengePhase = "image_generated"

	// ChallengePhaseGuessing indicates the guesser is working on this challenge
	ChallengePhaseGuessing ChallengePhase = "guessing"

	// ChallengePhaseResolved indicates the challenge has been answered
	ChallengePhaseResolved ChallengePhase = "resolved"
)

// MaxImageRegenerations caps how many times the image for a single challenge
// may be regenerated.
const MaxImageRegenerations = 2

// Challenge represents one round's sentence template and its progress through
// prompt, image and answer. The prompt, answer and draft fields are locally
// authoritative until the server echoes them back; image reference, resolved
// flag, phase and completion time always come from the server.
type Challenge struct {
	// ID is the unique identifier for the challenge
	ID string

	// Words are the five words forming the sentence template
	Words [5]string

	// ForbiddenWords are the three words the prompt must not contain
	ForbiddenWords [3]string

	// Prompt is the drawer's image-generation prompt text
	Prompt string

	// ImageURL is the reference to the generated image, server-assigned
	ImageURL string

	// Answer is the guesser's submitted answer text
	Answer string

	// Resolved indicates the challenge has been answered and scored
	Resolved bool

	// Phase is the server-assigned lifecycle phase
	Phase ChallengePhase

	// Regenerations is how many times the image has been regenerated
	Regenerations int

	// CompletedAt is when the challenge was resolved, zero until then
	CompletedAt time.Time
}

// ValidatePrompt reports whether the given prompt text is legal for this
// challenge: it must be non-empty and must not contain any template word or
// forbidden word, compared case-insensitively.
func (c *Challenge) ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	lowered := strings.ToLower(prompt)
	for _, word := range c.Words {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return ErrPromptContainsTargetWord
		}
	}
	for _, word := range c.ForbiddenWords {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return ErrPromptContainsForbiddenWord
		}
	}
	return nil
}

// CanRegenerate reports whether another image regeneration is permitted
func (c *Challenge) CanRegenerate() bool {
	return c.Regenerations < MaxImageRegenerations
}

// Clone returns an independent copy of the challenge
func (c *Challenge) Clone() *Challenge {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
