package gui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEmitWithoutAttachIsNoop(t *testing.T) {
	h := &Handle{}
	err := h.Emit("meters", map[string]float64{"peak": -6})
	require.NoError(t, err)
}

func TestHandleEmitEvaluatesScript(t *testing.T) {
	var got string
	h := NewHandle(func(script string) { got = script })

	err := h.Emit("meters", map[string]float64{"peak": -6})
	require.NoError(t, err)
	assert.Contains(t, got, `window.__soundbridge__._onEvent("meters",`)
	assert.Contains(t, got, `"peak":-6`)
}

func TestHandleDetachStopsDelivery(t *testing.T) {
	calls := 0
	h := NewHandle(func(string) { calls++ })
	h.Detach()

	require.NoError(t, h.Emit("x", nil))
	assert.Equal(t, 0, calls)
}

func TestDefaultDelegateConstraints(t *testing.T) {
	var d DefaultDelegate
	c := d.Constraints()
	assert.Equal(t, Size{Width: 400, Height: 300}, c.Min)
	assert.Equal(t, Size{Width: 1600, Height: 1200}, c.Max)
	assert.True(t, c.Resizable)
}

type stubHandler struct{}

func (stubHandler) Invoke(method string, args []json.RawMessage) (any, error) {
	return method, nil
}
func (stubHandler) Event(name string, data json.RawMessage) {}

func TestHandlerInterfaceSatisfiedByStub(t *testing.T) {
	var h Handler = stubHandler{}
	v, err := h.Invoke("ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "ping", v)
}
