package docparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDifficultyShortPlainText(t *testing.T) {
	assert.Equal(t, 1, EstimateDifficulty("read chapter one and take notes"))
	assert.Equal(t, 1, EstimateDifficulty(""))
}

func TestEstimateDifficultyKeywords(t *testing.T) {
	// 一个关键词 +2 -> score 2 -> 档位 2
	assert.Equal(t, 2, EstimateDifficulty("introduction to the sorting algorithm"))
	// 三个关键词 -> score 6 -> 档位 4
	assert.Equal(t, 4, EstimateDifficulty("algorithm complexity proof session"))
}

func TestEstimateDifficultyLengthBands(t *testing.T) {
	filler := strings.Repeat("word ", 800) // >700 词 -> +2
	assert.Equal(t, 2, EstimateDifficulty(filler))

	long := strings.Repeat("word ", 3200) // >3000 词 -> +4
	assert.Equal(t, 3, EstimateDifficulty(long))
}

func TestEstimateDifficultyMaxBand(t *testing.T) {
	text := strings.Repeat("word ", 3200) +
		"neural regression optimization cryptography statistics"
	assert.Equal(t, 5, EstimateDifficulty(text))
}

func TestExtractTextTxt(t *testing.T) {
	text, err := ExtractText("notes.TXT", []byte("hello world"))
	assert.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("slides.pptx", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
