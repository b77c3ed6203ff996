package mastermind

import (
	"slices"
	"strconv"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
)

// SidePhase is one player's progress.
type SidePhase int

const (
	SidePreparing SidePhase = 1
	SideActive    SidePhase = 2
	SideCompleted SidePhase = 3
)

// Phase is the combined progress of both sides.
type Phase int

const (
	PhasePregame             Phase = 1
	PhaseActive              Phase = 2
	PhaseLeftDoneRightActive Phase = 3
	PhaseLeftActiveRightDone Phase = 4
	PhaseDone                Phase = 5
)

// Guess is one committed guess and its score.
type Guess struct {
	Row   Row
	Score Score
}

// Side is one player's half of the board.
type Side struct {
	PlayerID       string
	Phase          SidePhase
	Password       Row
	PasswordLocked bool
	// Draft is the guess being composed during the active phase.
	Draft   Row
	Guesses []Guess
}

// State is a whole board game session.
type State struct {
	Left  Side
	Right Side
}

// NewGame seats exactly two players; the first is the left side.
func NewGame(players []string) (State, error) {
	_, maxPlayers := session.GameTypeMastermind.PlayerBounds()
	if len(players) != maxPlayers {
		return State{}, apperrors.WithMetadata(apperrors.CodeNotEnoughPlayers, "mastermind needs exactly two players", map[string]string{
			"Min": strconv.Itoa(maxPlayers),
		})
	}
	if players[0] == players[1] {
		return State{}, apperrors.Newf(apperrors.CodeGameCreateFailed, "duplicate player %q", players[0])
	}
	return State{
		Left:  newSide(players[0]),
		Right: newSide(players[1]),
	}, nil
}

func newSide(playerID string) Side {
	return Side{
		PlayerID: playerID,
		Phase:    SidePreparing,
		Password: NewRow(),
		Draft:    NewRow(),
	}
}

// Phase derives the combined phase.
func (s State) Phase() Phase {
	l, r := s.Left.Phase, s.Right.Phase
	switch {
	case l == SidePreparing || r == SidePreparing:
		return PhasePregame
	case l == SideCompleted && r == SideCompleted:
		return PhaseDone
	case l == SideCompleted:
		return PhaseLeftDoneRightActive
	case r == SideCompleted:
		return PhaseLeftActiveRightDone
	default:
		return PhaseActive
	}
}

// Done reports whether both sides cracked the opposing password.
func (s State) Done() bool {
	return s.Phase() == PhaseDone
}

// HasPlayer reports whether playerID owns a side.
func (s State) HasPlayer(playerID string) bool {
	return s.Left.PlayerID == playerID || s.Right.PlayerID == playerID
}

// sides returns pointers to the player's side and the opponent's side on s.
func (s *State) sides(playerID string) (mine, theirs *Side, err error) {
	switch playerID {
	case s.Left.PlayerID:
		return &s.Left, &s.Right, nil
	case s.Right.PlayerID:
		return &s.Right, &s.Left, nil
	default:
		return nil, nil, apperrors.Newf(apperrors.CodePlayerNotInSession, "%q has no side", playerID)
	}
}

func (s State) clone() State {
	return State{Left: s.Left.clone(), Right: s.Right.clone()}
}

func (sd Side) clone() Side {
	next := sd
	next.Password = slices.Clone(sd.Password)
	next.Draft = slices.Clone(sd.Draft)
	next.Guesses = make([]Guess, len(sd.Guesses))
	for i, g := range sd.Guesses {
		next.Guesses[i] = Guess{Row: slices.Clone(g.Row), Score: g.Score}
	}
	return next
}
