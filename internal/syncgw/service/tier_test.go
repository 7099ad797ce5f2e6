package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChooseTier(t *testing.T) {
	assert.Equal(t, TierInline, ChooseTier(0))
	assert.Equal(t, TierInline, ChooseTier(10*1024))
	assert.Equal(t, TierInline, ChooseTier(HeavyDataThreshold))
	assert.Equal(t, TierOffloaded, ChooseTier(HeavyDataThreshold+1))
	assert.Equal(t, TierOffloaded, ChooseTier(60*1024))
}
