package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLangs(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "region and encoding", value: "en_US.UTF-8", want: []string{"en", "en-US"}},
		{name: "posix C placeholder", value: "C", want: []string{"en", "en-US"}},
		{name: "C with encoding", value: "C.UTF-8", want: []string{"en", "en-US"}},
		{name: "POSIX placeholder", value: "POSIX", want: []string{"en", "en-US"}},
		{name: "unset", value: "", want: []string{"en", "en-US"}},
		{name: "language only", value: "fr", want: []string{"fr"}},
		{name: "language with encoding", value: "fr.UTF-8", want: []string{"fr"}},
		{name: "modifier dropped", value: "de_DE@euro", want: []string{"de", "de-DE"}},
		{name: "encoding and modifier", value: "sr_RS.UTF-8@latin", want: []string{"sr", "sr-RS"}},
		{name: "already hyphenated", value: "pt-BR", want: []string{"pt", "pt-BR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Langs(tt.value)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 2)
		})
	}
}

func TestTags(t *testing.T) {
	tags := Tags([]string{"en", "en-US", "not a tag!"})

	require.Len(t, tags, 2)
	assert.Equal(t, language.English.String(), tags[0].String())
	assert.Equal(t, language.AmericanEnglish.String(), tags[1].String())
}

func TestTagsEmpty(t *testing.T) {
	assert.Empty(t, Tags(nil))
}
