package session

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	want := Session{ID: "abc", Address: "0x1111111111111111111111111111111111111111"}
	got, ok := FromContext(WithSession(context.Background(), want))
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFromGin(t *testing.T) {
	c := &gin.Context{}
	_, ok := FromGin(c)
	assert.False(t, ok)

	c.Set(GinSessionIDKey, "abc")
	c.Set(GinAddressKey, "0xabc")

	got, ok := FromGin(c)
	assert.True(t, ok)
	assert.Equal(t, Session{ID: "abc", Address: "0xabc"}, got)
}
