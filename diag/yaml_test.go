package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlagsFromYAML(t *testing.T) {
	var doc struct {
		Mask  Flags `yaml:"mask"`
		Names Flags `yaml:"names"`
		List  Flags `yaml:"list"`
	}
	src := `
mask: 10
names: "level, quads"
list: [player, subticks]
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	assert.Equal(t, PerformanceInfo|PlayerInfo, doc.Mask)
	assert.Equal(t, LevelInfo|ShowQuads, doc.Names)
	assert.Equal(t, PlayerInfo|SubtickRenders, doc.List)
}

func TestFlagsRejectMapping(t *testing.T) {
	var doc struct {
		Debug Flags `yaml:"debug"`
	}
	err := yaml.Unmarshal([]byte("debug: {player: true}"), &doc)
	assert.Error(t, err)
}

func TestFlagsToYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Flags{"debug": Configs | ShowHitboxes})
	require.NoError(t, err)
	assert.Equal(t, "debug:\n    - configs\n    - hitboxes\n", string(out))
}
