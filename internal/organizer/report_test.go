package organizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_CountByFolder(t *testing.T) {
	r := &Report{Moves: []Action{
		{Kind: ActionMoveFile, Name: "Player.cs", Folder: FolderScripts},
		{Kind: ActionMoveMeta, Name: "Player.cs.meta", Folder: FolderScripts},
		{Kind: ActionMoveFile, Name: "Skybox.mat", Folder: FolderMaterials},
	}}

	got := r.CountByFolder()
	assert.Len(t, got, 6)
	assert.Equal(t, FolderCount{Folder: FolderAnimations, Moved: 0}, got[0])
	assert.Equal(t, FolderCount{Folder: FolderMaterials, Moved: 1}, got[1])
	assert.Equal(t, FolderCount{Folder: FolderScripts, Moved: 2}, got[3])
}

func TestReport_Hints(t *testing.T) {
	r := &Report{Skipped: []Skipped{
		{Name: "Notes.txt"},
		{Name: "fishnet", IsDir: true, Hint: "resembles FishNet"},
		{Name: "Enemy.CS", Hint: "case"},
	}}

	got := r.Hints()
	assert.Len(t, got, 2)
	assert.Equal(t, "Enemy.CS", got[0].Name)
	assert.Equal(t, "fishnet", got[1].Name)
}

func TestReport_Changed(t *testing.T) {
	assert.False(t, (&Report{}).Changed())
	assert.True(t, (&Report{Created: []string{FolderSounds}}).Changed())
	assert.True(t, (&Report{Moves: []Action{{Name: "a.cs"}}}).Changed())
	assert.False(t, (&Report{Moves: []Action{{Name: "a.cs"}}, RolledBack: true}).Changed())
}
