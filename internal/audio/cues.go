package audio

// Built-in cue IDs.
const (
	CuePick   = "pick"
	CueDrop   = "drop"
	CueRevert = "revert"
	CueWin    = "win"
)
