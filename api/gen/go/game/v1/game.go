// Package gamev1 holds the wire messages and service descriptor for
// game.v1.GameService. Messages are plain structs carried by the msgpack
// codec; oneofs are pointer fields of which at most one is set.
package gamev1

// GameType selects the rules a session is played under.
type GameType int32

const (
	GameType_GAME_TYPE_UNSPECIFIED GameType = 0
	GameType_GAME_TYPE_LOVE_LETTER GameType = 1
	GameType_GAME_TYPE_MASTERMIND  GameType = 2
)

// HostGameRequest creates a lobby if needed and joins it.
type HostGameRequest struct {
	PlayerID  string   `msgpack:"player_id"`
	SessionID string   `msgpack:"session_id"`
	GameType  GameType `msgpack:"game_type"`
}

// JoinGameRequest joins an existing lobby.
type JoinGameRequest struct {
	PlayerID  string   `msgpack:"player_id"`
	SessionID string   `msgpack:"session_id"`
	GameType  GameType `msgpack:"game_type"`
}

// StartGameRequest is sent by the lobby leader.
type StartGameRequest struct {
	PlayerID  string   `msgpack:"player_id"`
	SessionID string   `msgpack:"session_id"`
	GameType  GameType `msgpack:"game_type"`
}

// StartGameResponse lists players in turn order.
type StartGameResponse struct {
	PlayerIDs []string `msgpack:"player_ids"`
}

func (m *HostGameRequest) GetPlayerID() string {
	if m == nil {
		return ""
	}
	return m.PlayerID
}

func (m *HostGameRequest) GetSessionID() string {
	if m == nil {
		return ""
	}
	return m.SessionID
}

func (m *JoinGameRequest) GetPlayerID() string {
	if m == nil {
		return ""
	}
	return m.PlayerID
}

func (m *JoinGameRequest) GetSessionID() string {
	if m == nil {
		return ""
	}
	return m.SessionID
}

func (m *StartGameRequest) GetPlayerID() string {
	if m == nil {
		return ""
	}
	return m.PlayerID
}

func (m *StartGameRequest) GetSessionID() string {
	if m == nil {
		return ""
	}
	return m.SessionID
}

// LobbyMessage is one push on a HostGame or JoinGame stream.
type LobbyMessage struct {
	JoinAck      *JoinAck      `msgpack:"join_ack,omitempty"`
	PlayerJoined *PlayerJoined `msgpack:"player_joined,omitempty"`
	GameStarting *GameStarting `msgpack:"game_starting,omitempty"`
}

type JoinAck struct {
	GameType       GameType `msgpack:"game_type"`
	LeaderID       string   `msgpack:"leader_id"`
	OtherPlayerIDs []string `msgpack:"other_player_ids"`
}

type PlayerJoined struct {
	PlayerID string `msgpack:"player_id"`
}

type GameStarting struct{}

func (m *LobbyMessage) GetJoinAck() *JoinAck {
	if m == nil {
		return nil
	}
	return m.JoinAck
}

func (m *LobbyMessage) GetPlayerJoined() *PlayerJoined {
	if m == nil {
		return nil
	}
	return m.PlayerJoined
}

func (m *LobbyMessage) GetGameStarting() *GameStarting {
	if m == nil {
		return nil
	}
	return m.GameStarting
}

// GameDataClientMessage is one inbound message on OpenGameDataStream. The
// first must carry Handshake.
type GameDataClientMessage struct {
	Handshake  *Handshake        `msgpack:"handshake,omitempty"`
	LoveLetter *LoveLetterAction `msgpack:"love_letter,omitempty"`
	Mastermind *MastermindAction `msgpack:"mastermind,omitempty"`
}

type Handshake struct {
	PlayerID  string   `msgpack:"player_id"`
	SessionID string   `msgpack:"session_id"`
	GameType  GameType `msgpack:"game_type"`
}

func (m *GameDataClientMessage) GetHandshake() *Handshake {
	if m == nil {
		return nil
	}
	return m.Handshake
}

func (m *GameDataClientMessage) GetLoveLetter() *LoveLetterAction {
	if m == nil {
		return nil
	}
	return m.LoveLetter
}

func (m *GameDataClientMessage) GetMastermind() *MastermindAction {
	if m == nil {
		return nil
	}
	return m.Mastermind
}

// LoveLetterCard is a card rank; 0 means no card.
type LoveLetterCard int32

// LoveLetterSource picks which of the two held cards is played.
type LoveLetterSource int32

const (
	LoveLetterSource_SOURCE_UNSPECIFIED LoveLetterSource = 0
	LoveLetterSource_SOURCE_HAND        LoveLetterSource = 1
	LoveLetterSource_SOURCE_TOP_OF_DRAW LoveLetterSource = 2
)

type LoveLetterAction struct {
	Stage              *LoveLetterStage              `msgpack:"stage,omitempty"`
	SelectTargetPlayer *LoveLetterSelectTargetPlayer `msgpack:"select_target_player,omitempty"`
	SelectTargetCard   *LoveLetterSelectTargetCard   `msgpack:"select_target_card,omitempty"`
	Commit             *LoveLetterCommit             `msgpack:"commit,omitempty"`
}

type LoveLetterStage struct {
	Source LoveLetterSource `msgpack:"source"`
}

type LoveLetterSelectTargetPlayer struct {
	PlayerID string `msgpack:"player_id"`
}

type LoveLetterSelectTargetCard struct {
	Card LoveLetterCard `msgpack:"card"`
}

type LoveLetterCommit struct{}

// MastermindColor is a peg color; 0 clears a slot.
type MastermindColor int32

type MastermindAction struct {
	SetPeg    *MastermindSetPeg    `msgpack:"set_peg,omitempty"`
	CommitRow *MastermindCommitRow `msgpack:"commit_row,omitempty"`
}

type MastermindSetPeg struct {
	Index int32           `msgpack:"index"`
	Color MastermindColor `msgpack:"color"`
}

type MastermindCommitRow struct{}

// GameDataServerMessage is one outbound message on OpenGameDataStream.
type GameDataServerMessage struct {
	LoveLetterState *LoveLetterState `msgpack:"love_letter_state,omitempty"`
	MastermindState *MastermindState `msgpack:"mastermind_state,omitempty"`
	Rejection       *Rejection       `msgpack:"rejection,omitempty"`
}

func (m *GameDataServerMessage) GetLoveLetterState() *LoveLetterState {
	if m == nil {
		return nil
	}
	return m.LoveLetterState
}

func (m *GameDataServerMessage) GetMastermindState() *MastermindState {
	if m == nil {
		return nil
	}
	return m.MastermindState
}

func (m *GameDataServerMessage) GetRejection() *Rejection {
	if m == nil {
		return nil
	}
	return m.Rejection
}

// Rejection reports a refused action. Code is the domain error code and
// Message is localized for the caller.
type Rejection struct {
	Code    string `msgpack:"code"`
	Message string `msgpack:"message"`
}

// LoveLetterState is the card game as the receiving player may see it.
type LoveLetterState struct {
	Players       []*LoveLetterPlayer `msgpack:"players"`
	CurrentPlayer string              `msgpack:"current_player"`
	RoundNumber   int32               `msgpack:"round_number"`
	DrawPileSize  int32               `msgpack:"draw_pile_size"`
	Hand          LoveLetterCard      `msgpack:"hand"`
	Drawn         LoveLetterCard      `msgpack:"drawn"`
	Staged        *LoveLetterStaged   `msgpack:"staged,omitempty"`
	LastPlay      *LoveLetterOutcome  `msgpack:"last_play,omitempty"`
}

type LoveLetterPlayer struct {
	PlayerID   string           `msgpack:"player_id"`
	Wins       int32            `msgpack:"wins"`
	Eliminated bool             `msgpack:"eliminated"`
	Protected  bool             `msgpack:"protected"`
	Discards   []LoveLetterCard `msgpack:"discards"`
}

type LoveLetterStaged struct {
	Source       LoveLetterSource `msgpack:"source"`
	Card         LoveLetterCard   `msgpack:"card"`
	TargetPlayer string           `msgpack:"target_player"`
	TargetCard   LoveLetterCard   `msgpack:"target_card"`
}

type LoveLetterOutcome struct {
	Actor        string                    `msgpack:"actor"`
	Card         LoveLetterCard            `msgpack:"card"`
	TargetPlayer string                    `msgpack:"target_player"`
	TargetCard   LoveLetterCard            `msgpack:"target_card"`
	Revealed     LoveLetterCard            `msgpack:"revealed"`
	Eliminated   []string                  `msgpack:"eliminated"`
	RoundWinners []string                  `msgpack:"round_winners"`
	FinalHands   map[string]LoveLetterCard `msgpack:"final_hands"`
}

// MastermindPhase is the overall board phase.
type MastermindPhase int32

const (
	MastermindPhase_PHASE_UNSPECIFIED            MastermindPhase = 0
	MastermindPhase_PHASE_PREGAME                MastermindPhase = 1
	MastermindPhase_PHASE_ACTIVE                 MastermindPhase = 2
	MastermindPhase_PHASE_LEFT_DONE_RIGHT_ACTIVE MastermindPhase = 3
	MastermindPhase_PHASE_LEFT_ACTIVE_RIGHT_DONE MastermindPhase = 4
	MastermindPhase_PHASE_DONE                   MastermindPhase = 5
)

// MastermindSidePhase is one player's progress.
type MastermindSidePhase int32

const (
	MastermindSidePhase_SIDE_PHASE_UNSPECIFIED MastermindSidePhase = 0
	MastermindSidePhase_SIDE_PHASE_PREPARING   MastermindSidePhase = 1
	MastermindSidePhase_SIDE_PHASE_ACTIVE      MastermindSidePhase = 2
	MastermindSidePhase_SIDE_PHASE_COMPLETED   MastermindSidePhase = 3
)

type MastermindState struct {
	Phase    MastermindPhase `msgpack:"phase"`
	Self     *MastermindSide `msgpack:"self"`
	Opponent *MastermindSide `msgpack:"opponent"`
}

type MastermindSide struct {
	PlayerID       string              `msgpack:"player_id"`
	Phase          MastermindSidePhase `msgpack:"phase"`
	PasswordLocked bool                `msgpack:"password_locked"`
	Password       []MastermindColor   `msgpack:"password"`
	Draft          []MastermindColor   `msgpack:"draft"`
	Guesses        []*MastermindGuess  `msgpack:"guesses"`
}

type MastermindGuess struct {
	Row       []MastermindColor `msgpack:"row"`
	Correct   int32             `msgpack:"correct"`
	WrongSlot int32             `msgpack:"wrong_slot"`
}

func (m *MastermindState) GetSelf() *MastermindSide {
	if m == nil {
		return nil
	}
	return m.Self
}

func (m *MastermindState) GetOpponent() *MastermindSide {
	if m == nil {
		return nil
	}
	return m.Opponent
}

func (m *MastermindSide) GetPassword() []MastermindColor {
	if m == nil {
		return nil
	}
	return m.Password
}

func (m *Rejection) GetCode() string {
	if m == nil {
		return ""
	}
	return m.Code
}
