package models

// TeamColor identifies one of the two teams in a session
type TeamColor string

const (
	// TeamRed is the red team
	TeamRed TeamColor = "red"

	// TeamBlue is the blue team
	TeamBlue TeamColor = "blue"
)

// Role represents a player's responsibility within their team
type Role string

const (
	// RoleUnset indicates roles have not been assigned yet
	RoleUnset Role = ""

	// RoleDrawer is the player who writes image-generation prompts
	RoleDrawer Role = "drawer"

	// RoleGuesser is the player who submits answers against generated images
	RoleGuesser Role = "guesser"
)

// Player represents a participant in a game session
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Team is the color of the team the player belongs to
	Team TeamColor

	// Role is the player's assigned role, empty until assignment
	Role Role

	// IsHost indicates whether this player created the session
	IsHost bool

	// ChallengesSubmitted is how many challenge definitions the player has submitted
	ChallengesSubmitted int

	// ChallengesDrawn is how many of the player's challenges have a generated image
	ChallengesDrawn int

	// ChallengesGuessed is how many challenges the player has finished guessing
	ChallengesGuessed int
}

// Clone returns an independent copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
