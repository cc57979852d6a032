package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/plumber/internal/application/system"
)

// Replayer plays back recorded input tick by tick. It implements
// system.Source, so it slots into the sampler where the keyboard
// normally sits. Past the end of the recording it produces neutral
// input.
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load reads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll returns the recorded input for the current tick and advances
func (r *Replayer) Poll() system.State {
	if r.frame >= len(r.data.Frames) {
		return system.State{}
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return system.State{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
		Jump:  fi.J,
	}
}

// Done reports whether playback has run out of frames
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the number of recorded ticks
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed the session was recorded with
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the stage name the session was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset rewinds playback to the first tick
func (r *Replayer) Reset() {
	r.frame = 0
}
