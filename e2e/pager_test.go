//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	path, err := tf.WriteFile("fruit.txt", fruitList)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--placeholder", "pick a fruit", path))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("pick a fruit"))

	require.NoError(t, tf.SendKeys(KeyF1))
	require.True(t, tf.SeePlain("combogrip Help"), "help should open in the pager")
	require.True(t, tf.SeePlain("Navigation"))

	mark := tf.Mark()
	require.NoError(t, tf.SendKeys("q"))
	require.True(t, tf.WaitFor(func(string) bool {
		return contains(tf.SincePlain(mark), "pick a fruit")
	}, 3*time.Second), "Should return to the prompt after closing the pager")

	require.NoError(t, tf.SendCtrlC())
	code, err := tf.WaitExit(3 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, code)
}
