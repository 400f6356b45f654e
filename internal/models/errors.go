package models

import "errors"

// Define errors
var (
	ErrEmptyPrompt                 = errors.New("prompt cannot be empty")
	ErrPromptContainsTargetWord    = errors.New("prompt contains a target word")
	ErrPromptContainsForbiddenWord = errors.New("prompt contains a forbidden word")
)
