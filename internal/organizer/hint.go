package organizer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pluginHintThreshold is the minimum Jaro-Winkler similarity between folded
// names for a directory to be reported as a likely plugin folder.
const pluginHintThreshold = 0.9

// foldName lowercases s, strips accents and drops word separators.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return unicode.ToLower(r)
	}, folded)
}

// fileHint explains why an unmatched file looks like it was meant to match.
// Returns "" when the file is simply not an asset.
func fileHint(name string) string {
	ext := Extension(name)
	if ext == "" {
		return ""
	}
	for _, m := range Extensions() {
		if ext != m.Extension && strings.EqualFold(ext, m.Extension) {
			return fmt.Sprintf("extension %s differs from %s only by case; not moved to %s", ext, m.Extension, m.Folder)
		}
	}
	return ""
}

// dirHint reports the plugin folder an unmatched directory name resembles.
func dirHint(name string) string {
	folded := foldName(name)
	if folded == "" {
		return ""
	}

	var best string
	var bestScore float32
	for _, plugin := range PluginDirs() {
		score := edlib.JaroWinklerSimilarity(folded, foldName(plugin))
		if score > bestScore {
			best, bestScore = plugin, score
		}
	}
	if bestScore < pluginHintThreshold {
		return ""
	}
	return fmt.Sprintf("name resembles plugin folder %s; only exact names are moved", best)
}
