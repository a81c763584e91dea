package decide

import (
	"bytes"
	"strings"
	"testing"

	"hexbot/hexagon"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func wall(slot, distance uint32, enabled bool) hexagon.Wall {
	w := hexagon.Wall{Slot: slot, Distance: distance}
	if enabled {
		w.Enabled = 1
	}
	return w
}

func TestDecideSixSlots(t *testing.T) {
	walls := []hexagon.Wall{
		wall(0, 10, true),
		wall(3, 100, true),
		wall(0, 50, true),
		wall(5, 7, false),
	}

	d, ok := Decide(6, walls)
	require.True(t, ok)
	require.Equal(t, []uint32{10, NoObstacle, NoObstacle, 100, NoObstacle, NoObstacle}, d.MinDistances)
	require.Equal(t, uint32(1), d.Slot)
}

func TestDecideAllDisabled(t *testing.T) {
	walls := []hexagon.Wall{
		wall(2, 10, false),
		wall(4, 20, false),
	}

	d, ok := Decide(6, walls)
	require.True(t, ok)
	require.Equal(t, uint32(0), d.Slot)
	for _, m := range d.MinDistances {
		require.Equal(t, uint32(NoObstacle), m)
	}
}

func TestDecideNothingToDo(t *testing.T) {
	_, ok := Decide(0, []hexagon.Wall{wall(0, 1, true)})
	require.False(t, ok)

	_, ok = Decide(6, nil)
	require.False(t, ok)
}

func TestZeroDistanceIsIgnored(t *testing.T) {
	mins := MinDistances([]hexagon.Wall{wall(1, 0, true)}, 4)
	require.Equal(t, []uint32{NoObstacle, NoObstacle, NoObstacle, NoObstacle}, mins)
}

func TestSlotWrapsAround(t *testing.T) {
	mins := MinDistances([]hexagon.Wall{wall(7, 30, true)}, 6)
	require.Equal(t, uint32(30), mins[1])
}

func TestSelectSlotTies(t *testing.T) {
	require.Equal(t, uint32(0), SelectSlot([]uint32{5, 5, 5}))
	require.Equal(t, uint32(1), SelectSlot([]uint32{5, 9, 9, 2}))
	require.Equal(t, uint32(0), SelectSlot(nil))
}

func TestWriteTable(t *testing.T) {
	d := Decision{Slot: 1, MinDistances: []uint32{10, NoObstacle, 40}}

	var buf bytes.Buffer
	require.NoError(t, d.WriteTable(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "Slot MinDistance Target", lines[0])
	require.Equal(t, "0    10", lines[2])
	require.Equal(t, "1    -           *", lines[3])
	require.Equal(t, "2    40", lines[4])
}

func genWalls(slots uint32) *rapid.Generator[[]hexagon.Wall] {
	return rapid.SliceOfN(rapid.Custom(func(t *rapid.T) hexagon.Wall {
		return wall(
			rapid.Uint32Range(0, slots*3).Draw(t, "slot"),
			rapid.Uint32Range(0, 5000).Draw(t, "distance"),
			rapid.Bool().Draw(t, "enabled"),
		)
	}), 1, 40)
}

func TestDecideProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.Uint32Range(1, 12).Draw(t, "slots")
		walls := genWalls(slots).Draw(t, "walls")

		d, ok := Decide(slots, walls)
		if !ok {
			t.Fatal("expected a decision")
		}
		if uint32(len(d.MinDistances)) != slots {
			t.Fatalf("aggregate has %d entries for %d slots", len(d.MinDistances), slots)
		}
		if d.Slot >= slots {
			t.Fatalf("slot %d out of range for %d slots", d.Slot, slots)
		}

		for i, m := range d.MinDistances {
			if m > d.MinDistances[d.Slot] {
				t.Fatalf("slot %d has more room than the target", i)
			}
			if m == d.MinDistances[d.Slot] && uint32(i) < d.Slot {
				t.Fatalf("tie at %d should have won over %d", i, d.Slot)
			}
		}

		again, _ := Decide(slots, walls)
		if again.Slot != d.Slot {
			t.Fatal("decision is not deterministic")
		}
	})
}

func TestAbsentWallsDoNotMatter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.Uint32Range(1, 12).Draw(t, "slots")
		walls := genWalls(slots).Draw(t, "walls")

		var present []hexagon.Wall
		for _, w := range walls {
			if Present(w) {
				present = append(present, w)
			}
		}

		want := MinDistances(present, slots)
		got := MinDistances(walls, slots)
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("slot %d: %d != %d", i, got[i], want[i])
			}
		}
	})
}

func TestSlotModulo(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slots := rapid.Uint32Range(1, 12).Draw(t, "slots")
		walls := genWalls(slots).Draw(t, "walls")

		reduced := make([]hexagon.Wall, len(walls))
		for i, w := range walls {
			w.Slot %= slots
			reduced[i] = w
		}

		a := MinDistances(walls, slots)
		b := MinDistances(reduced, slots)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("slot %d differs after reduction", i)
			}
		}
	})
}
