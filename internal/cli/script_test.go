package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/rmera/vsepr/place"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestReadScript(t *testing.T) {
	s, err := ReadScript(strings.NewReader(ethanolScript))
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, Step{Action: "place", Element: "C", Position: []float64{0, 0, 0}}, s.Steps[0])
	assert.Equal(t, "", s.Steps[1].Element)
	assert.Equal(t, r3.Vec{X: 0.2, Y: 0.12}, s.Steps[2].pos())
	assert.Equal(t, "delete", s.Steps[3].Action)

	empty, err := ReadScript(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Steps)
}

func TestReadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "[[step]\naction = 1", "decode script"},
		{"action", "[[step]]\naction = \"move\"\nposition = [0.0, 0.0, 0.0]\n", "unknown action"},
		{"position", "[[step]]\naction = \"place\"\nposition = [0.0, 0.0]\n", "3 coordinates"},
		{"noposition", "[[step]]\naction = \"delete\"\n", "3 coordinates"},
		{"unknown key", "[[step]]\naction = \"place\"\nposition = [0.0, 0.0, 0.0]\ncolour = 2\n", "unknown keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadScript(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestScriptRun(t *testing.T) {
	s, err := ReadScript(strings.NewReader(ethanolScript + `
[[step]]
action = "delete"
position = [0.0, 0.0, 0.0]
`))
	require.NoError(t, err)
	var buf bytes.Buffer
	b := place.NewBuilder(nil)
	s.Run(b, log.New(&buf))
	mol := b.Structure()
	require.Equal(t, 2, mol.Len(), "the first carbon is deleted at the end")
	assert.Equal(t, "C", mol.Atom(0).Symbol)
	assert.Equal(t, "O", mol.Atom(1).Symbol)
	assert.Len(t, mol.Bonds(), 1)
	assert.Equal(t, "O", b.Element(), "the selection carries over steps")
	assert.Contains(t, buf.String(), "nothing to delete")
}

func TestScriptHydrogens(t *testing.T) {
	s, err := ReadScript(strings.NewReader(`
[[step]]
action = "place"
element = "N"
position = [0.0, 0.0, 0.0]

[[step]]
action = "hydrogens"
`))
	require.NoError(t, err)
	b := place.NewBuilder(nil)
	s.Run(b, log.New(&bytes.Buffer{}))
	mol := b.Structure()
	assert.Equal(t, 4, mol.Len(), "ammonia")
	assert.Len(t, mol.Bonds(), 3)
	assert.Equal(t, 0, mol.Atom(0).EmptyBonds())
}
