package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := New(21, 6)
	require.NoError(t, err)
	require.NoError(t, s.Apply(SetSpeed{Multiplier: 2}))

	record := Snapshot(s)
	assert.Equal(t, Record{Mass: 21, OrbitCount: 6, AnimationSpeed: 2}, record)

	restored, err := NewStateFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, 21.0, restored.BlackHole().MassSolar)
	assert.Len(t, restored.Orbits(), 6)
	assert.Equal(t, 2.0, restored.AnimationSpeed())
}

func TestRecordValidate(t *testing.T) {
	valid := Record{Mass: 10, OrbitCount: 4, AnimationSpeed: 1}
	require.NoError(t, valid.Validate())

	for _, bad := range []Record{
		{Mass: 0, OrbitCount: 4, AnimationSpeed: 1},
		{Mass: -1, OrbitCount: 4, AnimationSpeed: 1},
		{Mass: 10, OrbitCount: -1, AnimationSpeed: 1},
		{Mass: 10, OrbitCount: 4, AnimationSpeed: 0},
	} {
		err := bad.Validate()
		require.Error(t, err, "%+v", bad)
		assert.True(t, errors.Is(err, ErrConfig))
	}
}

// TestRecordEventsReplay verifies that replaying a record onto a live state
// lands on the recorded parameters, even across a large mass increase that
// would swallow the old orbits.
func TestRecordEventsReplay(t *testing.T) {
	s, err := New(10, 4)
	require.NoError(t, err)

	record := Record{Mass: 4.3e6, OrbitCount: 3, AnimationSpeed: 0.5}
	events, err := record.Events()
	require.NoError(t, err)
	for _, ev := range events {
		require.NoError(t, s.Apply(ev))
	}

	assert.Equal(t, 4.3e6, s.BlackHole().MassSolar)
	assert.Len(t, s.Orbits(), 3)
	assert.Equal(t, 0.5, s.AnimationSpeed())
}

func TestRecordEventsRejectsInvalid(t *testing.T) {
	_, err := Record{Mass: -1, OrbitCount: 1, AnimationSpeed: 1}.Events()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}
