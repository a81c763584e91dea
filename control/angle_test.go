package control

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAngleForSlot(t *testing.T) {
	require.Equal(t, uint32(30), AngleForSlot(0, 6))
	require.Equal(t, uint32(150), AngleForSlot(2, 6))
	require.Equal(t, uint32(150), AngleForSlot(8, 6))
	require.Equal(t, uint32(36), AngleForSlot(0, 5))
	require.Equal(t, uint32(0), AngleForSlot(3, 0))
}

func TestAngleForSlotFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.Uint32Range(1, 36).Draw(t, "slots")
		slot := rapid.Uint32Range(0, 3*slots).Draw(t, "slot")

		angle := AngleForSlot(slot, slots)
		if want := 360/slots*(slot%slots) + 180/slots; angle != want {
			t.Fatalf("angle %d, want %d", angle, want)
		}
		if angle >= 360 {
			t.Fatalf("angle %d out of range", angle)
		}
	})
}

func TestAngleStaysInSlot(t *testing.T) {
	// Only exact when the slot width is a whole number of degrees.
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.SampledFrom([]uint32{1, 2, 3, 4, 5, 6, 8, 9, 10, 12, 15, 18, 20, 24, 30, 36}).Draw(t, "slots")
		slot := rapid.Uint32Range(0, slots-1).Draw(t, "slot")

		angle := AngleForSlot(slot, slots)
		if got := angle * slots / 360; got != slot {
			t.Fatalf("angle %d lands in slot %d, want %d", angle, got, slot)
		}
	})
}

func TestAngleForSlotUnevenWidth(t *testing.T) {
	// 19 slots: 18 degrees each plus a remainder the formula drops.
	require.Equal(t, uint32(189), AngleForSlot(10, 19))
	require.Equal(t, uint32(333), AngleForSlot(18, 19))
}

func TestTowards(t *testing.T) {
	tests := []struct {
		current, target, slots uint32
		want                   Direction
	}{
		{0, 0, 6, None},
		{0, 1, 6, Right},
		{1, 0, 6, Left},
		{0, 5, 6, Left},
		{5, 0, 6, Right},
		{0, 3, 6, Right},
		{7, 1, 6, None},
		{0, 1, 0, None},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Towards(tt.current, tt.target, tt.slots),
			"from %d to %d of %d", tt.current, tt.target, tt.slots)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Steer")
	require.NoError(t, err)
	require.Equal(t, Steer, m)

	m, err = ParseMode(" teleport ")
	require.NoError(t, err)
	require.Equal(t, Teleport, m)

	_, err = ParseMode("warp")
	require.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "none", None.String())
}
