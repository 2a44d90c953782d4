package organizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FishNet", "fishnet"},
		{"Fish-Net", "fishnet"},
		{"MPUI Kit", "mpuikit"},
		{"Player_Prefs.Editor", "playerprefseditor"},
		{"Érp", "erp"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, foldName(tt.input))
		})
	}
}

func TestFileHint(t *testing.T) {
	assert.Contains(t, fileHint("Player.CS"), ".cs")
	assert.Contains(t, fileHint("Skybox.Mat"), "Materials")
	assert.Empty(t, fileHint("Notes.txt"))
	assert.Empty(t, fileHint("README"))
	assert.Empty(t, fileHint("Player.cs"), "exact matches never get a hint")
}

func TestDirHint(t *testing.T) {
	tests := []struct {
		name     string
		wantHint bool
		plugin   string
	}{
		{"fishnet", true, "FishNet"},
		{"Fish Net", true, "FishNet"},
		{"MPUI-Kit", true, "MPUIKit"},
		{"PlayerPrefsEditr", true, "PlayerPrefsEditor"},
		{"Textures", false, ""},
		{"Scenes", false, ""},
		{"Prefabs", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := dirHint(tt.name)
			if !tt.wantHint {
				assert.Empty(t, hint)
				return
			}
			assert.Contains(t, hint, tt.plugin)
		})
	}
}
