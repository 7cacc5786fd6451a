package combat

// Result classifies the state of a combat.
type Result string

const (
	ResultOngoing Result = ""
	ResultWin     Result = "win"
	ResultLose    Result = "lose"
)

// WinStatus is the outcome of CheckWinConditions.
type WinStatus struct {
	IsOver       bool
	Result       Result
	AliveEnemies int
	AliveParty   int
}

// CheckWinConditions classifies the combat from current hit points.
// An encounter with no living enemy is a win; otherwise a party with no
// living member is a loss. The win check runs first, so a simultaneous wipe
// of both sides resolves as a win.
func CheckWinConditions(enc Encounter, party Party) WinStatus {
	st := WinStatus{
		AliveEnemies: len(enc.Living()),
		AliveParty:   len(party.Living()),
	}
	switch {
	case st.AliveEnemies == 0:
		st.IsOver, st.Result = true, ResultWin
	case st.AliveParty == 0:
		st.IsOver, st.Result = true, ResultLose
	}
	return st
}
