package loveletter

import (
	"slices"
	"testing"

	apperrors "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/errors"
)

// fixture seats order with fixed hands. pile is bottom-first: its last
// element is the card the turn holder draws.
func fixture(order []string, hands map[string]Card, pile []Card) State {
	r := Round{
		Number:    1,
		DrawPile:  slices.Clone(pile),
		SetAside:  CardCountess,
		Hands:     map[string]Card{},
		Discards:  map[string][]Card{},
		Protected: map[string]bool{},
	}
	wins := map[string]int{}
	for _, p := range order {
		wins[p] = 0
		r.Discards[p] = nil
		if c, ok := hands[p]; ok {
			r.Hands[p] = c
		}
	}
	return State{TurnOrder: slices.Clone(order), Wins: wins, Round: r}
}

func mustStage(t *testing.T, s State, player string, src Source) State {
	t.Helper()
	next, err := Stage(s, player, src)
	if err != nil {
		t.Fatalf("stage %s: %v", player, err)
	}
	return next
}

func play(t *testing.T, s State, player string, src Source, target string, guess Card) State {
	t.Helper()
	s = mustStage(t, s, player, src)
	s, _ = SelectTargetPlayer(s, player, target)
	s, _ = SelectTargetCard(s, player, guess)
	next, err := Commit(s, player, 7)
	if err != nil {
		t.Fatalf("commit %s: %v", player, err)
	}
	return next
}

func expectCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if !apperrors.HasCode(err, code) {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("deck size = %d, want %d", len(deck), DeckSize)
	}
	want := map[Card]int{CardGuard: 5, CardPriest: 2, CardBaron: 2, CardHandmaid: 2, CardPrince: 2, CardKing: 1, CardCountess: 1, CardPrincess: 1}
	got := map[Card]int{}
	for _, c := range deck {
		got[c]++
	}
	for c, n := range want {
		if got[c] != n {
			t.Fatalf("%s copies = %d, want %d", c, got[c], n)
		}
	}
}

func TestDealInvariant(t *testing.T) {
	for _, order := range [][]string{{"a", "b"}, {"a", "b", "c"}, {"a", "b", "c", "d"}} {
		for seed := int64(0); seed < 200; seed++ {
			r := Deal(order, seed, 1)
			if len(r.DrawPile)+len(r.Hands)+1 != DeckSize {
				t.Fatalf("seed %d: pile %d + hands %d + 1 != %d", seed, len(r.DrawPile), len(r.Hands), DeckSize)
			}
			all := append(slices.Clone(r.DrawPile), r.SetAside)
			for _, p := range order {
				c, ok := r.Hands[p]
				if !ok {
					t.Fatalf("seed %d: %s has no card", seed, p)
				}
				all = append(all, c)
			}
			slices.Sort(all)
			if !slices.Equal(all, NewDeck()) {
				t.Fatalf("seed %d: dealt cards are not the deck", seed)
			}
			if r.Cursor < 0 || r.Cursor >= len(order) {
				t.Fatalf("seed %d: cursor %d out of range", seed, r.Cursor)
			}
		}
	}
}

func TestDealIsDeterministic(t *testing.T) {
	order := []string{"a", "b", "c"}
	a, b := Deal(order, 42, 1), Deal(order, 42, 1)
	if !slices.Equal(a.DrawPile, b.DrawPile) || a.Cursor != b.Cursor || a.SetAside != b.SetAside {
		t.Fatal("expected identical rounds for identical seeds")
	}
}

func TestNewGamePlayerBounds(t *testing.T) {
	if _, err := NewGame([]string{"solo"}, 1); err == nil {
		t.Fatal("expected error for one player")
	}
	if _, err := NewGame([]string{"a", "b", "c", "d", "e"}, 1); err == nil {
		t.Fatal("expected error for five players")
	}
	if _, err := NewGame([]string{"a", "a"}, 1); err == nil {
		t.Fatal("expected error for duplicate players")
	}
	s, err := NewGame([]string{"a", "b"}, 1)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if s.Phase() != PhaseInProgress || s.Round.Number != 1 {
		t.Fatalf("unexpected initial state: phase %d round %d", s.Phase(), s.Round.Number)
	}
}

func TestStageRules(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardPriest}, []Card{CardBaron, CardHandmaid})

	_, err := Stage(s, "p2", SourceHand)
	expectCode(t, err, apperrors.CodeNotYourTurn)
	_, err = Stage(s, "ghost", SourceHand)
	expectCode(t, err, apperrors.CodePlayerNotInSession)
	_, err = Stage(s, "p1", SourceUnspecified)
	expectCode(t, err, apperrors.CodeInvalidSource)
	_, err = Stage(State{}, "p1", SourceHand)
	expectCode(t, err, apperrors.CodeNotStarted)

	staged := mustStage(t, s, "p1", SourceTopOfDraw)
	if s.Staged != nil {
		t.Fatal("expected input state to stay unstaged")
	}
	if staged.Phase() != PhaseStaged || staged.Staged.Card != CardHandmaid {
		t.Fatalf("unexpected staged play %#v", staged.Staged)
	}

	again, err := Stage(staged, "p1", SourceTopOfDraw)
	if err != nil {
		t.Fatalf("restage: %v", err)
	}
	if again.Staged.Card != CardHandmaid {
		t.Fatal("expected restaging the same card to be a no-op")
	}
	_, err = Stage(staged, "p1", SourceHand)
	expectCode(t, err, apperrors.CodeAlreadyStaged)
}

func TestRestageSameRankFromOtherSource(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardPriest}, []Card{CardBaron, CardGuard})

	staged := mustStage(t, s, "p1", SourceHand)
	again, err := Stage(staged, "p1", SourceTopOfDraw)
	if err != nil {
		t.Fatalf("restage same rank: %v", err)
	}
	if again.Staged.Source != SourceHand || again.Staged.Card != CardGuard {
		t.Fatalf("expected staged play unchanged, got %#v", again.Staged)
	}
}

func TestCountessMustBePlayed(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardCountess, "p2": CardPriest}, []Card{CardBaron, CardKing})
	_, err := Stage(s, "p1", SourceTopOfDraw)
	expectCode(t, err, apperrors.CodeCountessMustBePlayed)
	if _, err := Stage(s, "p1", SourceHand); err != nil {
		t.Fatalf("staging the countess: %v", err)
	}

	s = fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardPrince, "p2": CardPriest}, []Card{CardBaron, CardCountess})
	_, err = Stage(s, "p1", SourceHand)
	expectCode(t, err, apperrors.CodeCountessMustBePlayed)
}

func TestSelectionsOutsideStagedAreNoops(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardPriest}, []Card{CardBaron, CardHandmaid})
	next, err := SelectTargetPlayer(s, "p1", "p2")
	if err != nil || next.Staged != nil {
		t.Fatalf("expected no-op, got %#v %v", next.Staged, err)
	}
	staged := mustStage(t, s, "p1", SourceHand)
	other, err := SelectTargetCard(staged, "p2", CardPriest)
	if err != nil || other.Staged.TargetCard != CardNone {
		t.Fatal("expected selection by another player to be ignored")
	}
}

func TestCommitRequiresStage(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardPriest}, []Card{CardBaron, CardHandmaid})
	_, err := Commit(s, "p1", 1)
	expectCode(t, err, apperrors.CodeNotStaged)
}

func TestGuardCorrectGuessEliminates(t *testing.T) {
	s := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardGuard, "p2": CardPriest, "p3": CardKing}, []Card{CardBaron, CardHandmaid})
	next := play(t, s, "p1", SourceHand, "p2", CardPriest)

	if next.Active("p2") {
		t.Fatal("expected p2 eliminated")
	}
	if next.Round.Hands["p1"] != CardHandmaid {
		t.Fatalf("p1 hand = %s, want drawn Handmaid", next.Round.Hands["p1"])
	}
	if next.CurrentPlayer() != "p3" {
		t.Fatalf("current = %s, want p3", next.CurrentPlayer())
	}
	if !slices.Equal(next.LastPlay.Eliminated, []string{"p2"}) {
		t.Fatalf("eliminated = %v", next.LastPlay.Eliminated)
	}
	if !slices.Equal(next.Round.Discards["p2"], []Card{CardPriest}) {
		t.Fatalf("p2 discards = %v", next.Round.Discards["p2"])
	}
	if !s.Active("p2") || s.Round.Hands["p1"] != CardGuard {
		t.Fatal("expected input state untouched")
	}
}

func TestGuardValidation(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardPriest}, []Card{CardBaron, CardHandmaid})
	staged := mustStage(t, s, "p1", SourceHand)

	_, err := Commit(staged, "p1", 1)
	expectCode(t, err, apperrors.CodeTargetRequired)

	withTarget, _ := SelectTargetPlayer(staged, "p1", "p2")
	_, err = Commit(withTarget, "p1", 1)
	expectCode(t, err, apperrors.CodeTargetCardRequired)

	guard, _ := SelectTargetCard(withTarget, "p1", CardGuard)
	_, err = Commit(guard, "p1", 1)
	expectCode(t, err, apperrors.CodeInvalidTargetCard)

	self, _ := SelectTargetPlayer(staged, "p1", "p1")
	self, _ = SelectTargetCard(self, "p1", CardPriest)
	_, err = Commit(self, "p1", 1)
	expectCode(t, err, apperrors.CodeInvalidTarget)

	wrong, _ := SelectTargetCard(withTarget, "p1", CardKing)
	next, err := Commit(wrong, "p1", 1)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !next.Active("p2") {
		t.Fatal("expected wrong guess to have no effect")
	}
}

func TestTargetedCardWithEveryoneProtected(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardKing, "p2": CardPriest}, []Card{CardBaron, CardGuard})
	s.Round.Protected["p2"] = true

	next := play(t, s, "p1", SourceHand, "", CardNone)
	if next.Round.Hands["p2"] != CardPriest {
		t.Fatal("expected no swap without a target")
	}

	s2 := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardKing, "p2": CardPriest}, []Card{CardBaron, CardGuard})
	s2.Round.Protected["p2"] = true
	staged := mustStage(t, s2, "p1", SourceHand)
	staged, _ = SelectTargetPlayer(staged, "p1", "p2")
	_, err := Commit(staged, "p1", 1)
	expectCode(t, err, apperrors.CodeInvalidTarget)
}

func TestPriestRevealsToActorOnly(t *testing.T) {
	s := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardPriest, "p2": CardKing, "p3": CardGuard}, []Card{CardBaron, CardHandmaid})
	next := play(t, s, "p1", SourceHand, "p2", CardNone)

	if v := Snapshot(next, "p1"); v.LastPlay.Revealed != CardKing {
		t.Fatalf("actor sees %s, want King", v.LastPlay.Revealed)
	}
	if v := Snapshot(next, "p3"); v.LastPlay.Revealed != CardNone {
		t.Fatalf("bystander sees %s", v.LastPlay.Revealed)
	}
}

func TestBaronComparesHands(t *testing.T) {
	s := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardBaron, "p2": CardPriest, "p3": CardGuard}, []Card{CardGuard, CardKing})
	next := play(t, s, "p1", SourceHand, "p2", CardNone)
	if next.Active("p2") || !next.Active("p1") {
		t.Fatal("expected King to beat Priest")
	}

	tie := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardBaron, "p2": CardKing, "p3": CardGuard}, []Card{CardGuard, CardKing})
	next = play(t, tie, "p1", SourceHand, "p2", CardNone)
	if !next.Active("p1") || !next.Active("p2") {
		t.Fatal("expected tie to eliminate nobody")
	}

	lose := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardGuard, "p2": CardPrincess, "p3": CardGuard}, []Card{CardGuard, CardBaron})
	next = play(t, lose, "p1", SourceTopOfDraw, "p2", CardNone)
	if next.Active("p1") {
		t.Fatal("expected Guard to lose to Princess")
	}
}

func TestHandmaidProtectsUntilNextTurn(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardHandmaid, "p2": CardGuard}, []Card{CardGuard, CardGuard, CardGuard, CardPriest})
	s = play(t, s, "p1", SourceHand, "", CardNone)
	if !s.Round.Protected["p1"] {
		t.Fatal("expected p1 protected")
	}

	staged := mustStage(t, s, "p2", SourceHand)
	staged, _ = SelectTargetPlayer(staged, "p2", "p1")
	staged, _ = SelectTargetCard(staged, "p2", CardPriest)
	_, err := Commit(staged, "p2", 1)
	expectCode(t, err, apperrors.CodeInvalidTarget)

	s = play(t, s, "p2", SourceHand, "", CardNone)
	if s.CurrentPlayer() != "p1" {
		t.Fatalf("current = %s, want p1", s.CurrentPlayer())
	}
	if s.Round.Protected["p1"] {
		t.Fatal("expected protection to lapse at p1's turn")
	}
}

func TestPrinceDiscardAndDraw(t *testing.T) {
	s := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardPrince, "p2": CardBaron, "p3": CardGuard}, []Card{CardKing, CardHandmaid, CardGuard})
	next := play(t, s, "p1", SourceHand, "p2", CardNone)
	if next.Round.Hands["p2"] != CardHandmaid {
		t.Fatalf("p2 hand = %s, want Handmaid", next.Round.Hands["p2"])
	}
	if !slices.Equal(next.Round.Discards["p2"], []Card{CardBaron}) {
		t.Fatalf("p2 discards = %v", next.Round.Discards["p2"])
	}

	princess := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardPrince, "p2": CardPrincess, "p3": CardGuard}, []Card{CardKing, CardHandmaid, CardGuard})
	next = play(t, princess, "p1", SourceHand, "p2", CardNone)
	if next.Active("p2") {
		t.Fatal("expected discarding the Princess to eliminate")
	}
}

func TestPrinceUsesSetAsideWhenPileIsEmpty(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardPrince, "p2": CardGuard}, []Card{CardBaron})
	next := play(t, s, "p1", SourceHand, "p2", CardNone)

	if next.Round.Number != 2 {
		t.Fatalf("expected a new round, got round %d", next.Round.Number)
	}
	final := next.LastPlay.FinalHands
	if final["p2"] != CardCountess || final["p1"] != CardBaron {
		t.Fatalf("final hands = %v", final)
	}
	if !slices.Equal(next.LastPlay.RoundWinners, []string{"p2"}) || next.Wins["p2"] != 1 {
		t.Fatalf("winners = %v wins = %v", next.LastPlay.RoundWinners, next.Wins)
	}
}

func TestKingSwapsHands(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardKing, "p2": CardGuard}, []Card{CardGuard, CardPriest})
	next := play(t, s, "p1", SourceHand, "p2", CardNone)
	if next.Round.Hands["p1"] != CardGuard || next.Round.Hands["p2"] != CardPriest {
		t.Fatalf("hands after swap = %v", next.Round.Hands)
	}
}

func TestPrincessEndsRoundForTwoPlayers(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardBaron}, []Card{CardGuard, CardGuard, CardPrincess})
	next := play(t, s, "p1", SourceTopOfDraw, "", CardNone)

	if next.Wins["p2"] != 1 || next.Wins["p1"] != 0 {
		t.Fatalf("wins = %v", next.Wins)
	}
	if next.Round.Number != 2 || len(next.Round.Hands) != 2 {
		t.Fatalf("expected fresh round with both players, got %+v", next.Round)
	}
	if len(next.Round.DrawPile)+len(next.Round.Hands)+1 != DeckSize {
		t.Fatal("expected new round to satisfy the deal invariant")
	}
}

func TestPileExhaustionSplitsTies(t *testing.T) {
	s := fixture([]string{"p1", "p2", "p3"}, map[string]Card{"p1": CardGuard, "p2": CardKing, "p3": CardKing}, []Card{CardHandmaid})
	next := play(t, s, "p1", SourceTopOfDraw, "", CardNone)

	if !slices.Equal(next.LastPlay.RoundWinners, []string{"p2", "p3"}) {
		t.Fatalf("winners = %v", next.LastPlay.RoundWinners)
	}
	if next.Wins["p2"] != 1 || next.Wins["p3"] != 1 || next.Wins["p1"] != 0 {
		t.Fatalf("wins = %v", next.Wins)
	}
	if s.Wins["p2"] != 0 {
		t.Fatal("expected input wins untouched")
	}
}

func TestSnapshotHidesOtherHands(t *testing.T) {
	s := fixture([]string{"p1", "p2"}, map[string]Card{"p1": CardGuard, "p2": CardKing}, []Card{CardBaron, CardHandmaid})
	s = mustStage(t, s, "p1", SourceHand)

	mine := Snapshot(s, "p1")
	if mine.Hand != CardGuard || mine.Drawn != CardHandmaid || mine.Staged == nil {
		t.Fatalf("turn holder view = %+v", mine)
	}
	theirs := Snapshot(s, "p2")
	if theirs.Hand != CardKing || theirs.Drawn != CardNone || theirs.Staged != nil {
		t.Fatalf("other view = %+v", theirs)
	}
	if theirs.DrawPileSize != 2 || theirs.CurrentPlayer != "p1" || len(theirs.Players) != 2 {
		t.Fatalf("public fields = %+v", theirs)
	}
}
