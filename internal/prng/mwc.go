package prng

// MWC is the multiply-with-carry generator used for contours. It is
// independent of the sfc32 stream so contour output never shifts logo draws.
type MWC struct {
	w, z uint32
}

// NewMWC seeds the two halves from s. Any int64 is accepted; the
// registers keep only the low 32 bits of 123456789+s and 987654321-s.
func NewMWC(s int64) *MWC {
	return &MWC{
		w: uint32(123456789 + s),
		z: uint32(987654321 - s),
	}
}

// Next returns a float in [0, 1).
func (m *MWC) Next() float64 {
	m.z = 36969*(m.z&0xffff) + (m.z >> 16)
	m.w = 18000*(m.w&0xffff) + (m.w >> 16)
	return float64((m.z<<16)+(m.w&0xffff)) / twoPow32
}
