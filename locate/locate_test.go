package locate

import (
	"os"
	"testing"

	"hexbot/process"

	"github.com/stretchr/testify/require"
)

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("superhexagon", "superhexagon"))
	require.True(t, MatchName("SuperHexagon.exe", "superhexagon"))
	require.True(t, MatchName("superhexagon", "SUPERHEXAGON.EXE"))
	require.False(t, MatchName("superhexagon2", "superhexagon"))
	require.False(t, MatchName("superhexagon", ""))
}

func TestByPIDSelf(t *testing.T) {
	info, err := ByPID(process.ProcessID(os.Getpid()))
	require.NoError(t, err)
	require.Equal(t, process.ProcessID(os.Getpid()), info.PID)
}

func TestFindMissing(t *testing.T) {
	_, err := Find(0, "no-such-process-hexbot-test")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = Find(process.ProcessID(1<<30), "")
	require.ErrorIs(t, err, ErrNotFound)
}
