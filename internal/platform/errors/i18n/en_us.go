package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown               = "UNKNOWN"
	CodeInvalidGameType       = "INVALID_GAME_TYPE"
	CodeSessionIDRequired     = "SESSION_ID_REQUIRED"
	CodePlayerIDRequired      = "PLAYER_ID_REQUIRED"
	CodeMissingPayload        = "MISSING_PAYLOAD"
	CodeHandshakeRequired     = "HANDSHAKE_REQUIRED"
	CodeNotFound              = "NOT_FOUND"
	CodeSessionAlreadyStarted = "SESSION_ALREADY_STARTED"
	CodeSessionNotStarted     = "SESSION_NOT_STARTED"
	CodePlayerNotInSession    = "PLAYER_NOT_IN_SESSION"
	CodeRegistryUnavailable   = "REGISTRY_UNAVAILABLE"
	CodeReplyDropped          = "REPLY_DROPPED"
	CodeGameCreateFailed      = "GAME_CREATE_FAILED"
	CodeRateLimited           = "RATE_LIMITED"
	CodeStreamReplaced        = "STREAM_REPLACED"
	CodeLobbyFull             = "LOBBY_FULL"
	CodeNotLeader             = "NOT_LEADER"
	CodeNotEnoughPlayers      = "NOT_ENOUGH_PLAYERS"
	CodeNotStarted            = "NOT_STARTED"
	CodeNotYourTurn           = "NOT_YOUR_TURN"
	CodeAlreadyStaged         = "ALREADY_STAGED"
	CodeNotStaged             = "NOT_STAGED"
	CodeInvalidSource         = "INVALID_SOURCE"
	CodeTargetRequired        = "TARGET_REQUIRED"
	CodeTargetCardRequired    = "TARGET_CARD_REQUIRED"
	CodeInvalidTarget         = "INVALID_TARGET"
	CodeInvalidTargetCard     = "INVALID_TARGET_CARD"
	CodeCountessMustBePlayed  = "COUNTESS_MUST_BE_PLAYED"
	CodeInvalidPegIndex       = "INVALID_PEG_INDEX"
	CodeInvalidColor          = "INVALID_COLOR"
	CodeRowIncomplete         = "ROW_INCOMPLETE"
	CodeRowLengthMismatch     = "ROW_LENGTH_MISMATCH"
	CodePasswordLocked        = "PASSWORD_LOCKED"
	CodeSideDone              = "SIDE_DONE"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		CodeUnknown: "An unexpected error occurred",

		// Request validation
		CodeInvalidGameType:   "Unknown game type",
		CodeSessionIDRequired: "A session ID is required",
		CodePlayerIDRequired:  "A player ID is required",
		CodeMissingPayload:    "The message has no payload",
		CodeHandshakeRequired: "The first message on a game stream must be a handshake",

		// Registry
		CodeNotFound:              "No game exists with that session ID",
		CodeSessionAlreadyStarted: "This game has already started",
		CodeSessionNotStarted:     "This game has not started yet",
		CodePlayerNotInSession:    "You are not a player in this game",
		CodeRegistryUnavailable:   "The game server is shutting down",
		CodeReplyDropped:          "The game server stopped before answering",
		CodeGameCreateFailed:      "The game could not be created",
		CodeStreamReplaced:        "You connected again from somewhere else",
		CodeRateLimited:           "Too many actions, slow down",

		// Lobby
		CodeLobbyFull:        "The lobby is full (maximum {{.Max}} players)",
		CodeNotLeader:        "Only the party leader can start the game",
		CodeNotEnoughPlayers: "At least {{.Min}} players are needed to start",

		// Card game turns
		CodeNotStarted:           "The round has not been dealt",
		CodeNotYourTurn:          "It is not your turn",
		CodeAlreadyStaged:        "A different card is already staged",
		CodeNotStaged:            "Stage a card before committing",
		CodeInvalidSource:        "Choose the card in your hand or the drawn card",
		CodeTargetRequired:       "{{.Card}} needs a target player",
		CodeTargetCardRequired:   "Name a card to guess",
		CodeInvalidTarget:        "That player cannot be targeted",
		CodeInvalidTargetCard:    "That card cannot be guessed",
		CodeCountessMustBePlayed: "The Countess must be played while holding the King or a Prince",

		// Board game
		CodeInvalidPegIndex:   "Peg position is out of range",
		CodeInvalidColor:      "Unknown peg color",
		CodeRowIncomplete:     "Fill every peg before committing",
		CodeRowLengthMismatch: "Rows have different lengths",
		CodePasswordLocked:    "Your password is already locked in",
		CodeSideDone:          "You already cracked the password",
	},
}
