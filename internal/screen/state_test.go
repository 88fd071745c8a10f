package screen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const failMsg = "Error fetching things"

var errNet = errors.New("network down")

func TestState_StartsLoading(t *testing.T) {
	s := New[[]string](failMsg)
	assert.Equal(t, PhaseLoading, s.Phase())
	assert.True(t, s.Loading())
	assert.False(t, s.Refreshing())
	_, ok := s.Data()
	assert.False(t, ok)
	_, ok = s.Error()
	assert.False(t, ok)
}

func TestState_SuccessfulFetch(t *testing.T) {
	s := New[[]string](failMsg)
	tk := s.Begin()

	require.True(t, s.Resolve(tk, []string{"a", "b"}, nil))
	assert.Equal(t, PhaseSuccess, s.Phase())
	assert.False(t, s.Loading())
	data, ok := s.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, data)
	_, failed := s.Error()
	assert.False(t, failed)
}

func TestState_FailedFetch(t *testing.T) {
	s := New[[]string](failMsg)
	tk := s.Begin()

	require.True(t, s.Resolve(tk, nil, errNet))
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.False(t, s.Loading())
	msg, ok := s.Error()
	require.True(t, ok)
	assert.Equal(t, failMsg, msg, "the cause never reaches the display")
	_, hasData := s.Data()
	assert.False(t, hasData)
}

func TestState_EmptyPayloadIsSuccess(t *testing.T) {
	s := New[[]string](failMsg)
	tk := s.Begin()
	require.True(t, s.Resolve(tk, []string{}, nil))
	data, ok := s.Data()
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestState_RefreshNeverReentersLoading(t *testing.T) {
	s := New[[]string](failMsg)
	s.Resolve(s.Begin(), []string{"old"}, nil)

	tk := s.BeginRefresh()
	assert.True(t, s.Refreshing())
	assert.False(t, s.Loading())
	data, _ := s.Data()
	assert.Equal(t, []string{"old"}, data, "data stays visible during refresh")

	require.True(t, s.Resolve(tk, []string{"new"}, nil))
	assert.False(t, s.Refreshing())
	assert.False(t, s.Loading())
	data, _ = s.Data()
	assert.Equal(t, []string{"new"}, data)
}

func TestState_RefreshFailureReplacesData(t *testing.T) {
	s := New[[]string](failMsg)
	s.Resolve(s.Begin(), []string{"old"}, nil)

	tk := s.BeginRefresh()
	require.True(t, s.Resolve(tk, nil, errNet))
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.False(t, s.Refreshing())
	_, hasData := s.Data()
	assert.False(t, hasData)

	// A later refresh can recover.
	tk = s.BeginRefresh()
	require.True(t, s.Resolve(tk, []string{"back"}, nil))
	assert.Equal(t, PhaseSuccess, s.Phase())
}

func TestState_StaleResponsesAreDropped(t *testing.T) {
	s := New[[]string](failMsg)
	initial := s.Begin()
	first := s.BeginRefresh()
	second := s.BeginRefresh()

	// Responses arrive out of order: newest first.
	require.True(t, s.Resolve(second, []string{"second"}, nil))
	assert.False(t, s.Resolve(first, []string{"first"}, nil))
	assert.False(t, s.Resolve(initial, nil, errNet))

	data, ok := s.Data()
	require.True(t, ok)
	assert.Equal(t, []string{"second"}, data)
	assert.False(t, s.Refreshing())
}

func TestState_RefreshingStaysUntilLatestCompletes(t *testing.T) {
	s := New[[]string](failMsg)
	s.Resolve(s.Begin(), []string{"x"}, nil)
	first := s.BeginRefresh()
	s.BeginRefresh()

	assert.False(t, s.Resolve(first, []string{"stale"}, nil))
	assert.True(t, s.Refreshing(), "the newer refresh is still outstanding")
}

func TestState_ResetStartsNewCycle(t *testing.T) {
	s := New[[]string](failMsg)
	old := s.Begin()
	s.Resolve(old, []string{"order-1"}, nil)
	refresh := s.BeginRefresh()

	tk := s.Reset()
	assert.True(t, s.Loading())
	assert.False(t, s.Refreshing())
	_, hasData := s.Data()
	assert.False(t, hasData)

	assert.False(t, s.Resolve(refresh, []string{"order-1-late"}, nil))
	assert.True(t, s.Loading())

	require.True(t, s.Resolve(tk, []string{"order-2"}, nil))
	data, _ := s.Data()
	assert.Equal(t, []string{"order-2"}, data)
}

func TestState_DisposeIgnoresLateResults(t *testing.T) {
	s := New[[]string](failMsg)
	tk := s.Begin()
	s.Dispose()

	assert.False(t, s.Resolve(tk, []string{"late"}, nil))
	assert.True(t, s.Disposed())
	assert.True(t, s.Loading())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Loading", PhaseLoading.String())
	assert.Equal(t, "Success", PhaseSuccess.String())
	assert.Equal(t, "Failed", PhaseFailed.String())
	assert.Equal(t, "Unknown", Phase(42).String())
}
