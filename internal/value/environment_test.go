package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", Number(1))

	v, err := env.Get("x")
	require.NoError(t, err)
	require.Equal(t, Number(1), v)
}

func TestEnvironmentGetWalksParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", Number(1))
	child := NewEnvironment(root)

	v, err := child.Get("x")
	require.NoError(t, err)
	require.Equal(t, Number(1), v)
}

func TestEnvironmentGetUnboundIsKeyNotFound(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing")
	require.Error(t, err)

	var knf *KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	require.Equal(t, "missing", knf.Name)
}

func TestEnvironmentDefineShadowsParent(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", Number(1))
	child := NewEnvironment(root)
	child.Define("x", Number(2))

	v, err := child.Get("x")
	require.NoError(t, err)
	require.Equal(t, Number(2), v)

	parentV, err := root.Get("x")
	require.NoError(t, err)
	require.Equal(t, Number(1), parentV)
}

// TestSetNeverCreatesNewBinding asserts spec.md §8's invariant: set! on an
// unbound name raises KeyNotFound rather than defining it anywhere.
func TestSetNeverCreatesNewBinding(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Set("x", Number(1))
	require.Error(t, err)

	var knf *KeyNotFoundError
	require.ErrorAs(t, err, &knf)
	require.False(t, env.Present("x"))
}

func TestSetWritesNearestAncestorBinding(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", Number(1))
	child := NewEnvironment(root)

	err := child.Set("x", Number(99))
	require.NoError(t, err)

	// the write landed on root, not as a new local shadow on child
	v, err := root.Get("x")
	require.NoError(t, err)
	require.Equal(t, Number(99), v)
}

func TestPresentChecksWholeChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", Number(1))
	child := NewEnvironment(root)

	require.True(t, child.Present("x"))
	require.False(t, child.Present("y"))
}

func TestUpdateBindsPairwiseAndPadsUndefined(t *testing.T) {
	env := NewEnvironment(nil)
	env.Update([]string{"a", "b", "c"}, []Value{Number(1), Number(2)})

	a, err := env.Get("a")
	require.NoError(t, err)
	require.Equal(t, Number(1), a)

	c, err := env.Get("c")
	require.NoError(t, err)
	require.Equal(t, Undefined{}, c)
}

func TestKeysIncludesAncestorsInnermostFirst(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", Number(1))
	child := NewEnvironment(root)
	child.Define("b", Number(2))

	keys := child.Keys()
	require.Equal(t, []string{"b", "a"}, keys)
}

func TestTopLevelWalksToRoot(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	grandchild := NewEnvironment(child)

	require.Same(t, root, grandchild.TopLevel())
	require.Same(t, root, root.TopLevel())
}

func TestParentOfRootIsNil(t *testing.T) {
	root := NewEnvironment(nil)
	require.Nil(t, root.Parent())

	child := NewEnvironment(root)
	require.Same(t, root, child.Parent())
}

func TestEnvironmentMemberGetDelegatesToGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", Number(1))

	v, err := env.MemberGet("x")
	require.NoError(t, err)
	require.Equal(t, Number(1), v)

	_, err = env.MemberGet("missing")
	require.Error(t, err)
}

func TestSuggestNameFindsCloseTypo(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("length", Number(1))
	env.Define("list", Number(2))

	require.Equal(t, "length", env.SuggestName("lenght"))
}

func TestSuggestNameEmptyWhenNothingClose(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("length", Number(1))

	require.Equal(t, "", env.SuggestName("zzzzzzzzzz"))
}

func TestSuggestNameEmptyOnEmptyEnvironment(t *testing.T) {
	env := NewEnvironment(nil)
	require.Equal(t, "", env.SuggestName("anything"))
}
