// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request validation errors
	CodeInvalidGameType   Code = "INVALID_GAME_TYPE"
	CodeSessionIDRequired Code = "SESSION_ID_REQUIRED"
	CodePlayerIDRequired  Code = "PLAYER_ID_REQUIRED"
	CodeMissingPayload    Code = "MISSING_PAYLOAD"
	CodeHandshakeRequired Code = "HANDSHAKE_REQUIRED"

	// Registry errors
	CodeNotFound              Code = "NOT_FOUND"
	CodeSessionAlreadyStarted Code = "SESSION_ALREADY_STARTED"
	CodeSessionNotStarted     Code = "SESSION_NOT_STARTED"
	CodePlayerNotInSession    Code = "PLAYER_NOT_IN_SESSION"
	CodeRegistryUnavailable   Code = "REGISTRY_UNAVAILABLE"
	CodeReplyDropped          Code = "REPLY_DROPPED"
	CodeGameCreateFailed      Code = "GAME_CREATE_FAILED"
	CodeRateLimited           Code = "RATE_LIMITED"
	CodeStreamReplaced        Code = "STREAM_REPLACED"

	// Lobby errors
	CodeLobbyFull        Code = "LOBBY_FULL"
	CodeNotLeader        Code = "NOT_LEADER"
	CodeNotEnoughPlayers Code = "NOT_ENOUGH_PLAYERS"

	// Turn errors shared by card games
	CodeNotStarted           Code = "NOT_STARTED"
	CodeNotYourTurn          Code = "NOT_YOUR_TURN"
	CodeAlreadyStaged        Code = "ALREADY_STAGED"
	CodeNotStaged            Code = "NOT_STAGED"
	CodeInvalidSource        Code = "INVALID_SOURCE"
	CodeTargetRequired       Code = "TARGET_REQUIRED"
	CodeTargetCardRequired   Code = "TARGET_CARD_REQUIRED"
	CodeInvalidTarget        Code = "INVALID_TARGET"
	CodeInvalidTargetCard    Code = "INVALID_TARGET_CARD"
	CodeCountessMustBePlayed Code = "COUNTESS_MUST_BE_PLAYED"

	// Board game errors
	CodeInvalidPegIndex   Code = "INVALID_PEG_INDEX"
	CodeInvalidColor      Code = "INVALID_COLOR"
	CodeRowIncomplete     Code = "ROW_INCOMPLETE"
	CodeRowLengthMismatch Code = "ROW_LENGTH_MISMATCH"
	CodePasswordLocked    Code = "PASSWORD_LOCKED"
	CodeSideDone          Code = "SIDE_DONE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed request or action payload
	case CodeInvalidGameType,
		CodeSessionIDRequired,
		CodePlayerIDRequired,
		CodeMissingPayload,
		CodeInvalidSource,
		CodeInvalidTargetCard,
		CodeInvalidPegIndex,
		CodeInvalidColor,
		CodeRowLengthMismatch:
		return codes.InvalidArgument

	// FailedPrecondition - session state doesn't allow the operation
	case CodeHandshakeRequired,
		CodeSessionAlreadyStarted,
		CodeSessionNotStarted,
		CodePlayerNotInSession,
		CodeStreamReplaced,
		CodeLobbyFull,
		CodeNotLeader,
		CodeNotEnoughPlayers,
		CodeNotStarted,
		CodeNotYourTurn,
		CodeAlreadyStaged,
		CodeNotStaged,
		CodeTargetRequired,
		CodeTargetCardRequired,
		CodeInvalidTarget,
		CodeCountessMustBePlayed,
		CodeRowIncomplete,
		CodePasswordLocked,
		CodeSideDone:
		return codes.FailedPrecondition

	// NotFound - no lobby or session under the identifier
	case CodeNotFound:
		return codes.NotFound

	case CodeRateLimited:
		return codes.ResourceExhausted

	default:
		return codes.Internal
	}
}
