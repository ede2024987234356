package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIn(t *testing.T) {
	assert.True(t, In("b", "a", "b", "c"))
	assert.False(t, In("d", "a", "b", "c"))
	assert.False(t, In("a"))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Uniq("a", "b", "a", "c", "b"))
	assert.Equal(t, []string{}, Uniq())
}
