// Package replay implements the JSONL input-log format: an optional header
// line naming the level, then one JSON object per simulation tick. Replays
// are the external determinism contract, so encoding is byte-stable (fixed
// key order, 0/1 booleans) and decoding is strict (a malformed frame line
// fails the whole load with its line number).
package replay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// Replay is a recorded input sequence plus the level it was recorded on.
type Replay struct {
	Version uint32
	Level   string
	Inputs  []sim.StepInput
}

type headerLine struct {
	Version *int64  `json:"version"`
	Level   *string `json:"level"`
}

// frameLine uses pointers so missing keys are detectable: every frame line
// must carry all seven fields.
type frameLine struct {
	L       *int `json:"l"`
	R       *int `json:"r"`
	JP      *int `json:"jp"`
	JR      *int `json:"jr"`
	Start   *int `json:"start"`
	Restart *int `json:"restart"`
	Quit    *int `json:"quit"`
}

func (f *frameLine) complete() bool {
	return f.L != nil && f.R != nil && f.JP != nil && f.JR != nil &&
		f.Start != nil && f.Restart != nil && f.Quit != nil
}

func (f *frameLine) toInput() sim.StepInput {
	return sim.StepInput{
		Left:           *f.L != 0,
		Right:          *f.R != 0,
		JumpPressed:    *f.JP != 0,
		JumpReleased:   *f.JR != 0,
		StartPressed:   *f.Start != 0,
		RestartPressed: *f.Restart != 0,
		QuitPressed:    *f.Quit != 0,
	}
}

func b01(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Encode renders the replay as JSONL: the header line first, then one frame
// line per input with keys in fixed order.
func Encode(r *Replay) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "{\"version\":%d,\"level\":%q}\n", r.Version, r.Level)

	for _, in := range r.Inputs {
		fmt.Fprintf(&sb,
			"{\"l\":%d,\"r\":%d,\"jp\":%d,\"jr\":%d,\"start\":%d,\"restart\":%d,\"quit\":%d}\n",
			b01(in.Left), b01(in.Right), b01(in.JumpPressed), b01(in.JumpReleased),
			b01(in.StartPressed), b01(in.RestartPressed), b01(in.QuitPressed))
	}

	return sb.String()
}

// Decode parses JSONL replay contents. Blank lines and '#' comment lines are
// skipped. A version+level line is treated as the header only while no frame
// has been seen yet; everything else must be a complete frame line. An empty
// frame list is an error.
func Decode(contents string) (*Replay, error) {
	out := &Replay{Version: 1}

	sawFrames := false
	for lineNo, raw := range strings.Split(contents, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !sawFrames {
			var hdr headerLine
			if err := json.Unmarshal([]byte(line), &hdr); err == nil &&
				hdr.Version != nil && hdr.Level != nil {
				if *hdr.Version <= 0 || *hdr.Version > 0xffff {
					return nil, fmt.Errorf("replay: invalid version on line %d", lineNo+1)
				}
				out.Version = uint32(*hdr.Version)
				out.Level = *hdr.Level
				continue
			}
		}

		var frame frameLine
		if err := json.Unmarshal([]byte(line), &frame); err != nil || !frame.complete() {
			return nil, fmt.Errorf("replay: parse error on line %d", lineNo+1)
		}
		out.Inputs = append(out.Inputs, frame.toInput())
		sawFrames = true
	}

	if len(out.Inputs) == 0 {
		return nil, fmt.Errorf("replay: no input frames")
	}

	return out, nil
}
