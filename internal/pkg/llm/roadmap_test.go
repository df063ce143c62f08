package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopicList(t *testing.T) {
	topics, err := parseTopicList(`["HTML Basics", "CSS Fundamentals", "JS"]`)
	require.NoError(t, err)
	// 过短的条目被丢弃
	assert.Equal(t, []string{"HTML Basics", "CSS Fundamentals"}, topics)
}

func TestParseTopicListInCodeFence(t *testing.T) {
	content := "Here you go:\n```json\n[\"Graphs\", \"Dynamic Programming\"]\n```"
	topics, err := parseTopicList(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Graphs", "Dynamic Programming"}, topics)
}

func TestParseTopicListInvalid(t *testing.T) {
	_, err := parseTopicList("sorry, I can't do that")
	assert.Error(t, err)
}
