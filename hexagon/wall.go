package hexagon

import "unsafe"

// WallSize is the size in bytes of one record in the wall array.
const WallSize = 0x14

// Wall mirrors one obstacle record of the playfield's wall array.
//
//	0x00 Slot      uint32
//	0x04 Distance  uint32  0 until the wall has spawned
//	0x08 Enabled   uint8
//	0x09 padding   [3]byte
//	0x0C Unk2      uint32
//	0x10 Unk3      uint32
type Wall struct {
	Slot     uint32
	Distance uint32
	Enabled  uint8
	_        [3]byte
	Unk2     uint32
	Unk3     uint32
}

// Both directions so any drift in the record layout fails the build.
var (
	_ [WallSize - unsafe.Sizeof(Wall{})]byte
	_ [unsafe.Sizeof(Wall{}) - WallSize]byte
)

func (w Wall) IsEnabled() bool {
	return w.Enabled != 0
}
