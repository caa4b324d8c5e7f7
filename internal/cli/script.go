package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/rmera/vsepr/place"
	"gonum.org/v1/gonum/spatial/r3"
)

// Step actions.
const (
	actionPlace     = "place"
	actionDelete    = "delete"
	actionHydrogens = "hydrogens" // fill every empty bond with a hydrogen
)

// Step is one interaction of a placement script.
type Step struct {
	Action   string    `toml:"action"`
	Element  string    `toml:"element"`  // for place; empty keeps the current selection
	Position []float64 `toml:"position"` // x, y, z in nm, not used by hydrogens
}

func (s Step) pos() r3.Vec {
	return r3.Vec{X: s.Position[0], Y: s.Position[1], Z: s.Position[2]}
}

// Script is a list of steps, replayed in order against a builder.
//
//	[[step]]
//	action = "place"
//	element = "C"
//	position = [0.0, 0.0, 0.0]
type Script struct {
	Steps []Step `toml:"step"`
}

// ReadScript decodes and validates a script.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, 0, len(und))
		for _, k := range und {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in script: %s", strings.Join(keys, ", "))
	}
	for i, st := range s.Steps {
		switch st.Action {
		case actionHydrogens:
			continue
		case actionPlace, actionDelete:
		default:
			return nil, fmt.Errorf("step %d: unknown action %q", i+1, st.Action)
		}
		if len(st.Position) != 3 {
			return nil, fmt.Errorf("step %d: position needs 3 coordinates, got %d", i+1, len(st.Position))
		}
	}
	return &s, nil
}

// ReadScriptFile reads the script in path.
func ReadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Run replays the steps on b.
func (s *Script) Run(b *place.Builder, l *log.Logger) {
	for i, st := range s.Steps {
		switch st.Action {
		case actionPlace:
			if st.Element != "" {
				b.SetElement(st.Element)
			}
			at := b.Place(st.pos())
			l.Debug("step", "n", i+1, "action", st.Action, "atom", at, "bonds", len(at.Bonds()))
		case actionDelete:
			if !b.Delete(st.pos()) {
				l.Warn("nothing to delete", "step", i+1, "position", st.Position)
			}
		case actionHydrogens:
			l.Debug("step", "n", i+1, "action", st.Action, "added", len(b.AddHydrogens()))
		}
	}
}
