package language

import "strings"

// DefaultVoice is used for every tag without an explicit voice mapping.
const DefaultVoice = "femi"

// DefaultTag is assumed when a client omits the language entirely.
const DefaultTag = "en-NG"

// displayNames maps client-facing regional tags to the name used when
// instructing the model which language to reply in.
var displayNames = map[string]string{
	"yo-NG":  "Yoruba",
	"ha-NG":  "Hausa",
	"ig-NG":  "Igbo",
	"en-NG":  "English",
	"pcm-NG": "Nigerian Pidgin",
}

// voices maps regional tags to synthesis voice identifiers. Tags absent
// here fall back to DefaultVoice, including yo-NG and en-NG.
var voices = map[string]string{
	"ha-NG": "hasan",
	"ig-NG": "ngozi",
}

// ShortCode returns the provider-facing short form of a regional tag:
// everything before the first "-", or the tag itself when no separator
// is present ("yo-NG" -> "yo", "pcm" -> "pcm").
func ShortCode(tag string) string {
	if i := strings.Index(tag, "-"); i >= 0 {
		return tag[:i]
	}
	return tag
}

// DisplayName returns the human-readable language name for a tag.
// Unmapped tags resolve to "English"; that is a policy default, not an
// error, so malformed input never fails here.
func DisplayName(tag string) string {
	if name, ok := displayNames[tag]; ok {
		return name
	}
	return "English"
}

// Voice returns the synthesis voice for a tag, falling back to
// DefaultVoice for anything unmapped.
func Voice(tag string) string {
	if voice, ok := voices[tag]; ok {
		return voice
	}
	return DefaultVoice
}
