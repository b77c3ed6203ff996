package game

import (
	gamev1 "github.com/fridge-dev/frj-game-ngn-sub000/api/gen/go/game/v1"
	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/lobby"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/loveletter"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/mastermind"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/domain/session"
	"github.com/fridge-dev/frj-game-ngn-sub000/internal/services/game/registry"
)

func gameTypeFromProto(t gamev1.GameType) session.GameType {
	switch t {
	case gamev1.GameType_GAME_TYPE_LOVE_LETTER:
		return session.GameTypeLoveLetter
	case gamev1.GameType_GAME_TYPE_MASTERMIND:
		return session.GameTypeMastermind
	default:
		return session.GameTypeUnspecified
	}
}

func gameTypeToProto(t session.GameType) gamev1.GameType {
	switch t {
	case session.GameTypeLoveLetter:
		return gamev1.GameType_GAME_TYPE_LOVE_LETTER
	case session.GameTypeMastermind:
		return gamev1.GameType_GAME_TYPE_MASTERMIND
	default:
		return gamev1.GameType_GAME_TYPE_UNSPECIFIED
	}
}

// lobbyMessageToProto maps a non-rejection lobby push.
func lobbyMessageToProto(m lobby.Message) *gamev1.LobbyMessage {
	switch m := m.(type) {
	case lobby.JoinAck:
		return &gamev1.LobbyMessage{JoinAck: &gamev1.JoinAck{
			GameType:       gameTypeToProto(m.GameType),
			LeaderID:       m.LeaderID,
			OtherPlayerIDs: m.OtherPlayerIDs,
		}}
	case lobby.PlayerJoined:
		return &gamev1.LobbyMessage{PlayerJoined: &gamev1.PlayerJoined{PlayerID: m.PlayerID}}
	case lobby.GameStarting:
		return &gamev1.LobbyMessage{GameStarting: &gamev1.GameStarting{}}
	default:
		return nil
	}
}

// actionFromProto decodes the action carried by an inbound data-stream
// message. Messages without an action payload are rejected.
func actionFromProto(m *gamev1.GameDataClientMessage) (registry.Action, error) {
	if ll := m.GetLoveLetter(); ll != nil {
		switch {
		case ll.Stage != nil:
			return registry.LoveLetterStage{Source: loveletter.Source(ll.Stage.Source)}, nil
		case ll.SelectTargetPlayer != nil:
			return registry.LoveLetterSelectTargetPlayer{PlayerID: ll.SelectTargetPlayer.PlayerID}, nil
		case ll.SelectTargetCard != nil:
			return registry.LoveLetterSelectTargetCard{Card: loveletter.Card(ll.SelectTargetCard.Card)}, nil
		case ll.Commit != nil:
			return registry.LoveLetterCommit{}, nil
		}
	}
	if mm := m.GetMastermind(); mm != nil {
		switch {
		case mm.SetPeg != nil:
			return registry.MastermindSetPeg{Index: int(mm.SetPeg.Index), Color: mastermind.Color(mm.SetPeg.Color)}, nil
		case mm.CommitRow != nil:
			return registry.MastermindCommitRow{}, nil
		}
	}
	if m.GetHandshake() != nil {
		return nil, apperrors.New(apperrors.CodeMissingPayload, "handshake already completed; expected an action")
	}
	return nil, apperrors.New(apperrors.CodeMissingPayload, "message carries no action")
}

func loveLetterStateToProto(v loveletter.View) *gamev1.LoveLetterState {
	out := &gamev1.LoveLetterState{
		CurrentPlayer: v.CurrentPlayer,
		RoundNumber:   int32(v.RoundNumber),
		DrawPileSize:  int32(v.DrawPileSize),
		Hand:          gamev1.LoveLetterCard(v.Hand),
		Drawn:         gamev1.LoveLetterCard(v.Drawn),
	}
	for _, p := range v.Players {
		out.Players = append(out.Players, &gamev1.LoveLetterPlayer{
			PlayerID:   p.PlayerID,
			Wins:       int32(p.Wins),
			Eliminated: p.Eliminated,
			Protected:  p.Protected,
			Discards:   cardsToProto(p.Discards),
		})
	}
	if v.Staged != nil {
		out.Staged = &gamev1.LoveLetterStaged{
			Source:       gamev1.LoveLetterSource(v.Staged.Source),
			Card:         gamev1.LoveLetterCard(v.Staged.Card),
			TargetPlayer: v.Staged.TargetPlayer,
			TargetCard:   gamev1.LoveLetterCard(v.Staged.TargetCard),
		}
	}
	if v.LastPlay != nil {
		last := v.LastPlay
		out.LastPlay = &gamev1.LoveLetterOutcome{
			Actor:        last.Actor,
			Card:         gamev1.LoveLetterCard(last.Card),
			TargetPlayer: last.TargetPlayer,
			TargetCard:   gamev1.LoveLetterCard(last.TargetCard),
			Revealed:     gamev1.LoveLetterCard(last.Revealed),
			Eliminated:   last.Eliminated,
			RoundWinners: last.RoundWinners,
		}
		if len(last.FinalHands) > 0 {
			out.LastPlay.FinalHands = make(map[string]gamev1.LoveLetterCard, len(last.FinalHands))
			for p, c := range last.FinalHands {
				out.LastPlay.FinalHands[p] = gamev1.LoveLetterCard(c)
			}
		}
	}
	return out
}

func cardsToProto(cards []loveletter.Card) []gamev1.LoveLetterCard {
	if len(cards) == 0 {
		return nil
	}
	out := make([]gamev1.LoveLetterCard, len(cards))
	for i, c := range cards {
		out[i] = gamev1.LoveLetterCard(c)
	}
	return out
}

func mastermindStateToProto(v mastermind.View) *gamev1.MastermindState {
	return &gamev1.MastermindState{
		Phase:    gamev1.MastermindPhase(v.Phase),
		Self:     sideToProto(v.Self),
		Opponent: sideToProto(v.Opponent),
	}
}

func sideToProto(s mastermind.SideView) *gamev1.MastermindSide {
	out := &gamev1.MastermindSide{
		PlayerID:       s.PlayerID,
		Phase:          gamev1.MastermindSidePhase(s.Phase),
		PasswordLocked: s.PasswordLocked,
		Password:       rowToProto(s.Password),
		Draft:          rowToProto(s.Draft),
	}
	for _, g := range s.Guesses {
		out.Guesses = append(out.Guesses, &gamev1.MastermindGuess{
			Row:       rowToProto(g.Row),
			Correct:   int32(g.Score.Correct),
			WrongSlot: int32(g.Score.WrongSlot),
		})
	}
	return out
}

func rowToProto(r mastermind.Row) []gamev1.MastermindColor {
	if len(r) == 0 {
		return nil
	}
	out := make([]gamev1.MastermindColor, len(r))
	for i, c := range r {
		out[i] = gamev1.MastermindColor(c)
	}
	return out
}
