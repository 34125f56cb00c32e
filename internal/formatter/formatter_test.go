package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildexec/internal/invocation"
)

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "structure", ProductStructurePhase.String())
	assert.Equal(t, "content", ContentPhase.String())
}

func TestTextFormatterEmitsNonEmptyBoundaries(t *testing.T) {
	f := Text{}
	ctx := BuildContext{ID: "id-1", Name: "demo"}
	target := &invocation.Target{ID: "T", Name: "T"}

	assert.NotEmpty(t, f.Begin(ctx))
	assert.NotEmpty(t, f.Success(ctx))
	assert.NotEmpty(t, f.BeginTarget(ctx, target))
	assert.NotEmpty(t, f.BeginInvocation(nil, "cc", ContentPhase))
}

func TestJSONFormatterProducesValidJSON(t *testing.T) {
	f := JSON{}
	ctx := BuildContext{ID: "id-1", Name: "demo"}
	target := &invocation.Target{ID: "T", Name: "T"}

	raw := f.BeginTarget(ctx, target)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "beginTarget", decoded["event"])
	assert.Equal(t, "T", decoded["target"])
}

func TestJSONFormatterFailureCarriesCount(t *testing.T) {
	f := JSON{}
	ctx := BuildContext{Name: "demo"}
	raw := f.Failure(ctx, []*invocation.Invocation{{}, {}})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, float64(2), decoded["failing"])
}

func TestColorFormatterEmitsNonEmptyForKeyEvents(t *testing.T) {
	f := Color{}
	ctx := BuildContext{ID: "id-1", Name: "demo"}
	target := &invocation.Target{ID: "T", Name: "T"}

	assert.NotEmpty(t, f.BeginTarget(ctx, target))
	assert.NotEmpty(t, f.Success(ctx))
	assert.NotEmpty(t, f.Failure(ctx, nil))
}
