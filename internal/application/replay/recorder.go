package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/plumber/internal/application/system"
)

// Recorder accumulates per-tick input for later playback
type Recorder struct {
	data      Data
	recording bool
	frame     int
}

// NewRecorder creates a recorder. The seed rebuilds the same spawn
// rolls on playback.
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: Data{
			Version:   "1.0",
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Record appends one tick's input
func (r *Recorder) Record(in system.State) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: r.frame,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		J: in.Jump,
	})
	r.frame++
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
