package pipefn_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"testing"

	"github.com/KasperOmsK/pipefn"

	"github.com/stretchr/testify/require"
)

func TestTryPipe_ReturnsResult(t *testing.T) {
	n, err := pipefn.TryPipe("42", strconv.Atoi)

	require.NoError(t, err)
	require.Equal(t, 42, n)
}

func TestTryPipe_ReturnsErrorUnchanged(t *testing.T) {
	errBoom := errors.New("boom")

	_, err := pipefn.TryPipe(1, func(int) (string, error) {
		return "", errBoom
	})

	require.Same(t, errBoom, err)
}

func TestTryPipe_KeepsErrorChain(t *testing.T) {
	_, err := pipefn.TryPipe("config.yaml", func(path string) ([]byte, error) {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	})

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.EqualError(t, err, "open config.yaml: file does not exist")

	_, err = pipefn.TryPipe("x", strconv.Atoi)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	require.Equal(t, "x", numErr.Num)
}

func TestTryPipe_CallsOnce(t *testing.T) {
	calls := 0

	_, err := pipefn.TryPipe(1, func(n int) (int, error) {
		calls++
		return n, errors.New("fail")
	})

	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestTryPipeRef_DoesNotConsume(t *testing.T) {
	foo := Foo{A: 12}

	a, err := pipefn.TryPipeRef(&foo, func(f *Foo) (int, error) {
		return f.A, nil
	})

	require.NoError(t, err)
	require.Equal(t, 12, a)
	require.Equal(t, Foo{A: 12}, foo)
}

func TestTryPipeMut_EditsAreVisibleOnError(t *testing.T) {
	foo := Foo{}
	errHalfway := errors.New("halfway")

	_, err := pipefn.TryPipeMut(&foo, func(f *Foo) (struct{}, error) {
		f.A = 12
		return struct{}{}, errHalfway
	})

	require.ErrorIs(t, err, errHalfway)
	require.Equal(t, Foo{A: 12}, foo)
}
