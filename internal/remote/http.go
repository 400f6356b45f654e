package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sketchduel/client/internal/models"
)

// HTTPConfig holds configuration for the HTTP session API client
type HTTPConfig struct {
	// BaseURL is the root URL of the remote session service
	BaseURL string

	// HTTPClient is the underlying client; a 30s-timeout default is used if nil
	HTTPClient *http.Client
}

// httpClient implements the Client interface against the JSON session API
type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTP creates a new HTTP-backed session API client
func NewHTTP(cfg *HTTPConfig) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &httpClient{
		baseURL: cfg.BaseURL,
		client:  client,
	}, nil
}

// do performs a single JSON request. Non-2xx responses surface the response
// body as the error message, which is where the service puts its error text.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API returned status code %d: %s", resp.StatusCode, string(responseBody))
	}

	if out != nil && len(responseBody) > 0 {
		if err := json.Unmarshal(responseBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// CreateSession creates a new game session
func (c *httpClient) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dto sessionDTO
	err := c.do(ctx, http.MethodPost, "/sessions", map[string]string{
		"host_name": input.HostName,
	}, &dto)
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{Session: dto.toModel()}, nil
}

// JoinSession adds a player to a session
func (c *httpClient) JoinSession(ctx context.Context, input *JoinSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/join", input.SessionID), map[string]string{
		"player_id":   input.PlayerID,
		"player_name": input.PlayerName,
		"team":        string(input.Team),
	}, nil)
}

// LeaveSession removes a player from a session
func (c *httpClient) LeaveSession(ctx context.Context, input *LeaveSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/leave", input.SessionID), map[string]string{
		"player_id": input.PlayerID,
	}, nil)
}

// ChangeTeam moves a player to another team
func (c *httpClient) ChangeTeam(ctx context.Context, input *ChangeTeamInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/team", input.SessionID), map[string]string{
		"player_id": input.PlayerID,
		"team":      string(input.Team),
	}, nil)
}

// GetSession retrieves the full session snapshot
func (c *httpClient) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dto sessionDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%s", input.SessionID), nil, &dto)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: dto.toModel()}, nil
}

// GetSessionStatus retrieves just the lifecycle status
func (c *httpClient) GetSessionStatus(ctx context.Context, input *GetSessionStatusInput) (*GetSessionStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dto struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%s/status", input.SessionID), nil, &dto)
	if err != nil {
		return nil, err
	}

	return &GetSessionStatusOutput{Status: models.SessionStatus(dto.Status)}, nil
}

// StartSession moves the session out of the lobby
func (c *httpClient) StartSession(ctx context.Context, input *StartSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/start", input.SessionID), map[string]string{
		"player_id": input.PlayerID,
	}, nil)
}

// ListChallenges retrieves all challenges for a session
func (c *httpClient) ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dtos []challengeDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%s/challenges", input.SessionID), nil, &dtos)
	if err != nil {
		return nil, err
	}

	output := &ListChallengesOutput{}
	for _, dto := range dtos {
		output.Challenges = append(output.Challenges, dto.toModel())
	}
	return output, nil
}

// SubmitChallenge creates a new challenge from a word template
func (c *httpClient) SubmitChallenge(ctx context.Context, input *SubmitChallengeInput) (*SubmitChallengeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dto challengeDTO
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/challenges", input.SessionID), map[string]any{
		"player_id":       input.PlayerID,
		"words":           input.Words[:],
		"forbidden_words": input.ForbiddenWords[:],
	}, &dto)
	if err != nil {
		return nil, err
	}

	return &SubmitChallengeOutput{Challenge: dto.toModel()}, nil
}

// SubmitPrompt submits a prompt and synchronously generates the image
func (c *httpClient) SubmitPrompt(ctx context.Context, input *SubmitPromptInput) (*SubmitPromptOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var dto struct {
		ImageURL string `json:"image_url"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/challenges/%s/prompt", input.SessionID, input.ChallengeID), map[string]string{
		"player_id": input.PlayerID,
		"prompt":    input.Prompt,
	}, &dto)
	if err != nil {
		return nil, err
	}

	return &SubmitPromptOutput{ImageURL: dto.ImageURL}, nil
}

// SubmitAnswer submits the guesser's answer for a challenge
func (c *httpClient) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sessions/%s/challenges/%s/answer", input.SessionID, input.ChallengeID), map[string]any{
		"player_id": input.PlayerID,
		"answer":    input.Answer,
		"resolved":  input.Resolved,
	}, nil)
}
