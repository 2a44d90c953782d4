package organizer

import (
	"path/filepath"
	"sort"
	"strings"
)

// Destination folder names.
const (
	FolderAnimations = "Animations"
	FolderMaterials  = "Materials"
	FolderPlugins    = "Plugins"
	FolderScripts    = "Scripts"
	FolderSettings   = "Settings"
	FolderSounds     = "Sounds"
)

// MetaSuffix is appended to an asset's name to form its companion metadata file.
const MetaSuffix = ".meta"

// LegacyScriptName is the name of the script this tool replaces. It is never moved.
const LegacyScriptName = "organize_assets.py"

var folders = [...]string{
	FolderAnimations,
	FolderMaterials,
	FolderPlugins,
	FolderScripts,
	FolderSettings,
	FolderSounds,
}

var extensionFolders = map[string]string{
	".cs":     FolderScripts,
	".asset":  FolderSettings,
	".mixer":  FolderSounds,
	".mat":    FolderMaterials,
	".shader": FolderMaterials,
	".anim":   FolderAnimations,
}

var pluginDirs = map[string]struct{}{
	"ERP":               {},
	"FishNet":           {},
	"MPUIKit":           {},
	"PlayerPrefsEditor": {},
}

// Folders returns the destination folder names in creation order.
func Folders() []string {
	out := make([]string, len(folders))
	copy(out, folders[:])
	return out
}

// FolderFor returns the destination folder for a file name.
// Matching is an exact, case-sensitive lookup of the extension.
func FolderFor(name string) (string, bool) {
	ext := Extension(name)
	if ext == "" {
		return "", false
	}
	folder, ok := extensionFolders[ext]
	return folder, ok
}

// IsPluginDir reports whether a directory name is on the plugin allow-list.
func IsPluginDir(name string) bool {
	_, ok := pluginDirs[name]
	return ok
}

// Extension returns the text from the last dot of name, including the dot.
// A name whose only dots are leading (".cs", "..mat") has no extension.
func Extension(name string) string {
	if !strings.Contains(strings.TrimLeft(name, "."), ".") {
		return ""
	}
	return filepath.Ext(name)
}

// ExtensionMapping is one row of the extension table.
type ExtensionMapping struct {
	Extension string `json:"extension" yaml:"extension"`
	Folder    string `json:"folder" yaml:"folder"`
}

// Extensions returns the extension table sorted by folder, then extension.
func Extensions() []ExtensionMapping {
	out := make([]ExtensionMapping, 0, len(extensionFolders))
	for ext, folder := range extensionFolders {
		out = append(out, ExtensionMapping{Extension: ext, Folder: folder})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Folder != out[j].Folder {
			return out[i].Folder < out[j].Folder
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// PluginDirs returns the plugin allow-list, sorted.
func PluginDirs() []string {
	out := make([]string, 0, len(pluginDirs))
	for name := range pluginDirs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
