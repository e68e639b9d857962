package infra

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var initPC = Caller(0)

func TestFrameFormat(t *testing.T) {
	require.Equal(t, "err_stack_test.go", fmt.Sprintf("%s", initPC))
	require.Equal(t, "init", fmt.Sprintf("%n", initPC))

	line, err := strconv.Atoi(fmt.Sprintf("%d", initPC))
	require.NoError(t, err)
	require.Greater(t, line, 0)
	require.Equal(t, "err_stack_test.go:"+strconv.Itoa(line), fmt.Sprintf("%v", initPC))

	full := fmt.Sprintf("%+s", initPC)
	require.True(t, strings.HasPrefix(full, "github.com/benz9527/xrbtree/lib/infra.init\n\t"))
	require.True(t, strings.HasSuffix(full, "err_stack_test.go"))
}

func TestFrameUnknown(t *testing.T) {
	testcases := []struct {
		format string
		want   string
	}{
		{"%s", "unknownFile"},
		{"%n", "unknownFunc"},
		{"%d", "0"},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, Frame(0)))
	}
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))
}

//go:noinline
func helperFrame() Frame {
	return Caller(1)
}

func TestCaller(t *testing.T) {
	frame := Caller(0)
	require.Equal(t, "TestCaller", frame.Func())

	frame = helperFrame()
	require.Equal(t, "TestCaller", frame.Func())

	text, err := frame.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xrbtree/lib/infra.TestCaller "))
	require.Contains(t, string(text), "err_stack_test.go:")
}
