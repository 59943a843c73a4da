package nats

import (
	"encoding/json"
	"testing"

	"ara-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "ara.events.COVERAGE_CHANGED", Subject(events.CoverageChanged))
}

func TestDecode(t *testing.T) {
	published := events.New(events.FunctionalityMoved, 4, map[string]interface{}{"functionality_ids": []int64{1, 2}})
	raw, err := json.Marshal(published.Payload())
	require.NoError(t, err)

	got, err := decode(Subject(events.FunctionalityMoved), raw)
	require.NoError(t, err)

	assert.Equal(t, events.FunctionalityMoved, got.EventType())
	assert.Equal(t, published.Id, got.Id)
	assert.True(t, published.Timestamp().Equal(got.Timestamp()))

	projectId, ok := events.ProjectId(got)
	require.True(t, ok)
	assert.Equal(t, int64(4), projectId)
}

func TestDecode_RejectsInvalidJSON(t *testing.T) {
	_, err := decode(Subject(events.CoverageChanged), []byte("{"))
	assert.Error(t, err)
}
