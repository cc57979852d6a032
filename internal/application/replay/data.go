// Package replay records and plays back per-tick input. Because the
// simulation is tick-driven and input is the only nondeterminism left
// after seeding, a recorded session reproduces exactly.
package replay

// FrameInput records the input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	J bool `json:"j,omitempty"` // Jump
}

// Data contains everything needed to replay a session
type Data struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
