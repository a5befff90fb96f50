package bail_test

import (
	"errors"
	"testing"

	"github.com/benfrankel/tiny-bail/pkg/bail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry(t *testing.T) {
	t.Parallel()

	o := bail.Try(5, nil)
	require.True(t, o.Ok())
	assert.Equal(t, 5, o.Value())

	o = bail.Try(0, errors.New("boom"))
	require.False(t, o.Ok())
	assert.Equal(t, "an error", o.Reason())
}

func TestTryDiscardsErrorValue(t *testing.T) {
	t.Parallel()
	o := bail.Try("x", errors.New("secret detail"))

	assert.NotContains(t, o.Reason(), "secret")
}

func TestPtr(t *testing.T) {
	t.Parallel()

	n := 9
	o := bail.Ptr(&n)
	require.True(t, o.Ok())
	assert.Equal(t, 9, o.Value())

	o = bail.Ptr[int](nil)
	require.False(t, o.Ok())
	assert.Equal(t, "nil", o.Reason())
}

func TestFrom(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	o := bail.From(m["a"], true)
	require.True(t, o.Ok())
	assert.Equal(t, 1, o.Value())

	v, present := m["b"]
	o = bail.From(v, present)
	require.False(t, o.Ok())
	assert.Equal(t, "absent", o.Reason())
}

func TestWhen(t *testing.T) {
	t.Parallel()

	o := bail.When(true)
	require.True(t, o.Ok())
	assert.Equal(t, bail.Unit{}, o.Value())

	o = bail.When(false)
	require.False(t, o.Ok())
	assert.Equal(t, "false", o.Reason())
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	assert.True(t, bail.NotNil(5).Ok())
	assert.False(t, bail.NotNil(nil).Ok())

	var p *int
	o := bail.NotNil(p)
	require.False(t, o.Ok())
	assert.Equal(t, "nil", o.Reason())

	n := 3
	assert.True(t, bail.NotNil(&n).Ok())
}

// lease implements Classifiable to verify the extension contract.
type lease struct {
	holder  string
	expired bool
}

func (l lease) Classify() bail.Outcome[string] {
	if l.expired {
		return bail.EmptyReason[string]("expired")
	}
	return bail.Has(l.holder)
}

func TestClassifyExtension(t *testing.T) {
	t.Parallel()

	o := bail.Classify[string](lease{holder: "worker-1"})
	require.True(t, o.Ok())
	assert.Equal(t, "worker-1", o.Value())

	o = bail.Classify[string](lease{expired: true})
	require.False(t, o.Ok())
	assert.Equal(t, "expired", o.Reason())
}

func TestSingleEvaluation(t *testing.T) {
	t.Parallel()

	calls := 0
	fallible := func() (int, error) {
		calls++
		return 0, errors.New("boom")
	}

	v, ok := bail.Quiet(bail.Try(fallible()))
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 1, calls, "input expression must be evaluated exactly once")
}
