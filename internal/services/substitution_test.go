package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		rawInput  string
		want      string
	}{
		{
			name:      "single topic token",
			structure: "Tell me about [TOPIC].",
			rawInput:  "volcanoes",
			want:      "Tell me about volcanoes.",
		},
		{
			name:      "both tokens twice, unrelated token untouched",
			structure: "[TOPIC] and [SUBJECT]; again [TOPIC], [SUBJECT]. Use [FORMAT].",
			rawInput:  "tea",
			want:      "tea and tea; again tea, tea. Use [FORMAT].",
		},
		{
			name:      "no tokens is identity",
			structure: "Plain text only.",
			rawInput:  "anything",
			want:      "Plain text only.",
		},
		{
			name:      "other bracketed tokens left alone",
			structure: "Explain [TECHNOLOGY] in [DETAIL_LEVEL] detail.",
			rawInput:  "ignored",
			want:      "Explain [TECHNOLOGY] in [DETAIL_LEVEL] detail.",
		},
		{
			name:      "no escaping: token-bearing input hits the later pass",
			structure: "About [TOPIC].",
			rawInput:  "[SUBJECT] & <stuff>",
			want:      "About [SUBJECT] & <stuff> & <stuff>.",
		},
		{
			name:      "empty raw input removes tokens",
			structure: "About [TOPIC]!",
			rawInput:  "",
			want:      "About !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.structure, tt.rawInput))
		})
	}
}

func TestSubstituteIdempotentForTokenFreeInput(t *testing.T) {
	structure := "Write about [TOPIC] and [SUBJECT]."
	once := Substitute(structure, "bees")
	twice := Substitute(once, "bees")
	assert.Equal(t, once, twice)
}
