package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
	assert.Equal(t, 1, Estimate("hey"))
	assert.Equal(t, 1, Estimate("heyo"))
	assert.Equal(t, 2, Estimate("hey you"))
	assert.Equal(t, 2, Estimate("привет"))
}
