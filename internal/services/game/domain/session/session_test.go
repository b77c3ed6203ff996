package session

import (
	"testing"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

func TestPlayerBounds(t *testing.T) {
	tests := []struct {
		gameType GameType
		min, max int
	}{
		{GameTypeLoveLetter, 2, 4},
		{GameTypeMastermind, 2, 2},
		{GameTypeUnspecified, 0, 0},
		{GameType(99), 0, 0},
	}
	for _, tt := range tests {
		gotMin, gotMax := tt.gameType.PlayerBounds()
		if gotMin != tt.min || gotMax != tt.max {
			t.Fatalf("%s bounds = (%d, %d), want (%d, %d)", tt.gameType, gotMin, gotMax, tt.min, tt.max)
		}
	}
}

func TestNewIdentifier(t *testing.T) {
	id, err := NewIdentifier("  table-1 ", GameTypeLoveLetter)
	if err != nil {
		t.Fatalf("new identifier: %v", err)
	}
	if id.SessionID != "table-1" {
		t.Fatalf("session id = %q", id.SessionID)
	}
	if id.String() != "love_letter/table-1" {
		t.Fatalf("string = %q", id.String())
	}

	if _, err := NewIdentifier(" ", GameTypeLoveLetter); !apperrors.HasCode(err, apperrors.CodeSessionIDRequired) {
		t.Fatalf("expected session id required, got %v", err)
	}
	if _, err := NewIdentifier("x", GameTypeUnspecified); !apperrors.HasCode(err, apperrors.CodeInvalidGameType) {
		t.Fatalf("expected invalid game type, got %v", err)
	}
	if _, err := NewIdentifier("x", GameType(7)); !apperrors.HasCode(err, apperrors.CodeInvalidGameType) {
		t.Fatalf("expected invalid game type, got %v", err)
	}
}

func TestIdentifierIsComparableKey(t *testing.T) {
	a, _ := NewIdentifier("s", GameTypeLoveLetter)
	b, _ := NewIdentifier("s", GameTypeMastermind)
	m := map[Identifier]int{a: 1, b: 2}
	if len(m) != 2 {
		t.Fatal("expected same session id under different games to be distinct keys")
	}
}

func TestNormalizePlayerID(t *testing.T) {
	if got, err := NormalizePlayerID(" p1 "); err != nil || got != "p1" {
		t.Fatalf("normalize = %q, %v", got, err)
	}
	if _, err := NormalizePlayerID(""); !apperrors.HasCode(err, apperrors.CodePlayerIDRequired) {
		t.Fatalf("expected player id required, got %v", err)
	}
}
