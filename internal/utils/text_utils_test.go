package utils_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/utils"
)

func TestTruncateTextWithinLimit(t *testing.T) {
	tp := utils.NewTextProcessor(zap.NewNop())
	assert.Equal(t, "short", tp.TruncateText("short", 100))
	assert.Equal(t, "no limit", tp.TruncateText("no limit", 0))
}

func TestTruncateTextRespectsUTF8(t *testing.T) {
	tp := utils.NewTextProcessor(zap.NewNop())

	text := strings.Repeat("£", 10)
	truncated := tp.TruncateText(text, 5)
	assert.True(t, utf8.ValidString(truncated))
	assert.True(t, strings.HasSuffix(truncated, "..."))
	assert.Less(t, len(truncated), len(text))
}

func TestSanitizeUTF8(t *testing.T) {
	tp := utils.NewTextProcessor(zap.NewNop())

	assert.Equal(t, "clean", tp.SanitizeUTF8("clean"))

	dirty := "bad\xffbyte"
	sanitized := tp.SanitizeUTF8(dirty)
	assert.True(t, utf8.ValidString(sanitized))
	assert.Equal(t, "badbyte", sanitized)
}
