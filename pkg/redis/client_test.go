package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), "not a url")
	assert.ErrorContains(t, err, "invalid Redis URL")

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = NewClient(context.Background(), "redis://"+addr)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
