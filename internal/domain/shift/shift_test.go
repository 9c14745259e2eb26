package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShift_Abbrev(t *testing.T) {
	assert.Equal(t, "P", Pagi.Abbrev())
	assert.Equal(t, "S", Siang.Abbrev())
	assert.Equal(t, "M", Malam.Abbrev())
	assert.Equal(t, "SORE", Shift("SORE").Abbrev())
	assert.False(t, Shift("SORE").IsValid())
	assert.True(t, Malam.IsValid())
}
