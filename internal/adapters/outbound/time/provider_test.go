package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTimeProvider_Now(t *testing.T) {
	provider := CurrentTimeProvider{}
	before := time.Now()
	got := provider.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	init := InitCurrentTimeProvider{}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}
