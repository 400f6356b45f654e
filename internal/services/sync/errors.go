package sync

import "errors"

// Define errors
var (
	ErrAlreadyRunning     = errors.New("synchronizer is already running")
	ErrChallengeNotFound  = errors.New("challenge not found in local working set")
	ErrChallengeUnknown   = errors.New("challenge not present in last remote fetch")
	ErrNotHost            = errors.New("only the host can start the session")
	ErrRegenerationLimit  = errors.New("image regeneration limit reached")
	ErrEmptyAnswer        = errors.New("answer cannot be empty")
	ErrIncompleteTemplate = errors.New("challenge template requires five words")
	ErrNoPromptDrafted    = errors.New("no prompt has been drafted for this challenge")
	ErrNilConfig          = errors.New("config cannot be nil")
	ErrNilInput           = errors.New("input cannot be nil")
	ErrNilClient          = errors.New("client cannot be nil")
	ErrNilClock           = errors.New("clock cannot be nil")
	ErrEmptySessionID     = errors.New("session ID cannot be empty")
	ErrEmptyPlayerID      = errors.New("player ID cannot be empty")
)
