package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	src, err := Load("")
	require.NoError(t, err)

	events, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 9)

	first := events[0]
	assert.Equal(t, "ev1", first.ID)
	assert.Equal(t, "Technology", first.Category)
	assert.Equal(t, "June 15-18, 2025", first.DateLabel)
	assert.Equal(t, "299", first.Price.String())
	assert.False(t, first.IsFree)

	marathon := events[3]
	assert.Equal(t, "ev4", marathon.ID)
	assert.True(t, marathon.IsFree)
	assert.True(t, marathon.Price.IsZero())
}

func TestSource_ListReturnsCopies(t *testing.T) {
	src, err := Load("")
	require.NoError(t, err)
	events, err := src.List(context.Background())
	require.NoError(t, err)
	events[0].Title = "changed"

	again, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "TechConf 2025: AI and the Future", again[0].Title)
}

func TestNewSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bad yaml", raw: "events: [\n"},
		{name: "bad price", raw: "events:\n  - id: a\n    title: A\n    price: cheap\n"},
		{name: "negative price", raw: "events:\n  - id: a\n    title: A\n    price: -5\n"},
		{name: "missing id", raw: "events:\n  - title: A\n    price: 5\n"},
		{name: "duplicate id", raw: "events:\n  - id: a\n    title: A\n  - id: a\n    title: B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("events:\n  - id: x1\n    title: Meetup\n    type: Business\n    price: \"19.99\"\n"), 0o600))

	src, err := Load(path)
	require.NoError(t, err)
	events, err := src.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "19.99", events[0].Price.String())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
