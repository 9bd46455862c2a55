package language

import "testing"

func TestShortCode(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"yo-NG", "yo"},
		{"ha-NG", "ha"},
		{"ig-NG", "ig"},
		{"en-NG", "en"},
		{"pcm", "pcm"},
		{"yo", "yo"},
		{"xx-YY-zz", "xx"},
		{"", ""},
		{"-NG", ""},
	}

	for _, c := range cases {
		if got := ShortCode(c.tag); got != c.want {
			t.Errorf("ShortCode(%q) = %q, want %q", c.tag, got, c.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{"yo-NG", "Yoruba"},
		{"ha-NG", "Hausa"},
		{"ig-NG", "Igbo"},
		{"en-NG", "English"},
		{"pcm-NG", "Nigerian Pidgin"},
	}

	for _, c := range cases {
		if got := DisplayName(c.tag); got != c.want {
			t.Errorf("DisplayName(%q) = %q, want %q", c.tag, got, c.want)
		}
	}
}

// Unmapped tags default to English on purpose; the normalizer is total
// over all string inputs.
func TestDisplayNameDefaultsToEnglish(t *testing.T) {
	for _, tag := range []string{"fr-FR", "xx-YY", "", "yo", "garbage"} {
		if got := DisplayName(tag); got != "English" {
			t.Errorf("DisplayName(%q) = %q, want English", tag, got)
		}
	}
}

func TestVoice(t *testing.T) {
	if got := Voice("ha-NG"); got != "hasan" {
		t.Errorf("Voice(ha-NG) = %q, want hasan", got)
	}
	if got := Voice("ig-NG"); got != "ngozi" {
		t.Errorf("Voice(ig-NG) = %q, want ngozi", got)
	}
}

func TestVoiceDefaultsToFemi(t *testing.T) {
	for _, tag := range []string{"yo-NG", "en-NG", "xx-YY", "", "ha", "malformed--tag"} {
		if got := Voice(tag); got != DefaultVoice {
			t.Errorf("Voice(%q) = %q, want %q", tag, got, DefaultVoice)
		}
	}
}

func TestVoiceIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Voice("ha-NG"); got != "hasan" {
			t.Fatalf("Voice(ha-NG) changed across calls: %q", got)
		}
	}
}
