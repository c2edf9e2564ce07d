package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/tagged3/pkg/result"
	"github.com/ib-77/tagged3/pkg/tagged"
)

func TestStart_MapUnwrap(t *testing.T) {
	t.Parallel()

	got := Start(result.Ok[int, string](2)).
		Map(func(x int) int { return x * 10 }).
		Unwrap()

	assert.Equal(t, 20, got)
}

func TestMap_ErrPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	c := Start(result.Err[int]("x")).
		Map(func(x int) int { called = true; return x * 10 })

	require.True(t, c.IsErr())
	assert.False(t, c.IsOk())
	assert.False(t, called)

	reason, ok := c.Result().Reason()
	require.True(t, ok)
	assert.Equal(t, "x", reason)
}

func TestMap_ReturnsNewChain(t *testing.T) {
	t.Parallel()

	start := Start(result.Ok[int, string](1))
	next := start.Map(func(x int) int { return x + 1 })

	assert.Equal(t, 1, start.Unwrap())
	assert.Equal(t, 2, next.Unwrap())
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	c := Start(result.Err[int]("bad")).
		MapErr(func(s string) string { return "very " + s })
	reason, _ := c.Result().Reason()
	assert.Equal(t, "very bad", reason)

	ok := Start(result.Ok[int, string](3)).
		MapErr(func(s string) string { t.Fatalf("should not run: %s", s); return s })
	assert.Equal(t, 3, ok.Unwrap())
}

func TestMapFunctions_ChangeTypes(t *testing.T) {
	t.Parallel()

	c := Map(Start(result.Ok[int, string](7)), strconv.Itoa)
	assert.Equal(t, "7", c.Unwrap())

	e := MapErr(Start(result.Err[int]("boom")), func(s string) error { return errors.New(s) })
	reason, ok := e.Result().Reason()
	require.True(t, ok)
	assert.EqualError(t, reason, "boom")
}

func TestStateNeverFlips(t *testing.T) {
	t.Parallel()

	okChain := Start(result.Ok[int, string](1)).
		MapErr(func(s string) string { return s }).
		Map(func(x int) int { return -x })
	assert.True(t, okChain.IsOk())

	errChain := Start(result.Err[int]("e")).
		Map(func(x int) int { return x }).
		MapErr(func(s string) string { return s + s })
	assert.True(t, errChain.IsErr())
}

func TestUnwrap_ErrPanicsWithPlainMessage(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c := Start(result.Err[int](boom))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.EqualError(t, err, "unwrap called on err: boom")
		assert.False(t, errors.Is(err, boom))
	}()
	c.Unwrap()
}

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := result.Cases[int, string, string]{
		Ok:  func(x int) string { return "ok " + strconv.Itoa(x) },
		Err: func(e string) string { return "err " + e },
	}

	assert.Equal(t, "ok 5", Match(Start(result.Ok[int, string](5)), cases))
	assert.Equal(t, "err no", Match(Start(result.Err[int]("no")), cases))
}

func TestChain_IsTagged(t *testing.T) {
	t.Parallel()

	c := Start(result.Err[int]("no"))
	assert.True(t, tagged.Is(c, result.TagErr))
	assert.False(t, tagged.Is(c, result.TagOk))
}
