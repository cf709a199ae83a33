package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	assert.Equal(t, "Ayşe", EscapeLikePattern("Ayşe"))
	assert.Equal(t, `100\%`, EscapeLikePattern("100%"))
	assert.Equal(t, `STU\_001`, EscapeLikePattern("STU_001"))
	assert.Equal(t, `a\\b`, EscapeLikePattern(`a\b`))
	assert.Equal(t, `\%\_\\`, EscapeLikePattern(`%_\`))
}

func TestNullHelpers(t *testing.T) {
	value := "x"
	assert.True(t, GetNullString(&value).Valid)
	assert.False(t, GetNullString(nil).Valid)
	assert.False(t, GetContentNullString("").Valid)
	assert.False(t, GetNullInt64(0).Valid)
	assert.True(t, GetNullInt64(7).Valid)
}
