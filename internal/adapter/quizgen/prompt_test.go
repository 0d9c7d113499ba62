package quizgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Ada Lovelace", "Ada Lovelace was an English mathematician.")

	assert.Contains(t, prompt, `article content about "Ada Lovelace"`)
	assert.Contains(t, prompt, "Ada Lovelace was an English mathematician.")
	assert.Contains(t, prompt, `"quiz": An array of 7 quiz questions`)
	assert.Contains(t, prompt, "Array of 4 options")
	assert.Contains(t, prompt, "Array of 4-6 related Wikipedia topics")
	// Article text goes after the instructions header, verbatim.
	assert.Greater(t, strings.Index(prompt, "Ada Lovelace was an English mathematician."),
		strings.Index(prompt, "ARTICLE CONTENT:"))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := BuildPrompt("T", "body")
	b := BuildPrompt("T", "body")
	assert.Equal(t, a, b)
}
