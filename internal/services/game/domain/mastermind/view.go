package mastermind

import "slices"

// SideView is a side as seen by one viewer.
type SideView struct {
	PlayerID       string
	Phase          SidePhase
	PasswordLocked bool
	// Password and Draft are only filled for the viewer's own side.
	Password Row
	Draft    Row
	Guesses  []Guess
}

// View is the board as one player sees it.
type View struct {
	Phase    Phase
	Self     SideView
	Opponent SideView
}

// Snapshot renders s for viewer. The opponent's password stays hidden until
// the game is done.
func Snapshot(s State, viewer string) View {
	mine, theirs := s.Left, s.Right
	if viewer == s.Right.PlayerID {
		mine, theirs = s.Right, s.Left
	}
	v := View{
		Phase: s.Phase(),
		Self:  viewOf(mine, true),
	}
	v.Opponent = viewOf(theirs, s.Done())
	return v
}

func viewOf(sd Side, reveal bool) SideView {
	out := SideView{
		PlayerID:       sd.PlayerID,
		Phase:          sd.Phase,
		PasswordLocked: sd.PasswordLocked,
		Guesses:        sd.clone().Guesses,
	}
	if reveal {
		out.Password = slices.Clone(sd.Password)
		out.Draft = slices.Clone(sd.Draft)
	}
	return out
}
