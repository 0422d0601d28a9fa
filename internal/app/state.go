package app

// State is a stage of one pipeline run
type State string

const (
	StateIdle         State = "idle"
	StateSelecting    State = "selecting"
	StateScanning     State = "scanning"
	StateExportPrompt State = "export_prompt"
	StateWriting      State = "writing"
)

// transitions lists the states reachable from each state
var transitions = map[State][]State{
	StateIdle:         {StateSelecting},
	StateSelecting:    {StateScanning, StateIdle},
	StateScanning:     {StateExportPrompt},
	StateExportPrompt: {StateWriting, StateIdle},
	StateWriting:      {StateIdle},
}

// CanTransition reports whether the pipeline may move from s to next
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// String returns the state name
func (s State) String() string {
	return string(s)
}
