package response

// Tile holds a raw vector tile. Unlike the other services the tile service
// returns protobuf bytes, not JSON, so the view is a plain byte holder.
type Tile struct {
	data []byte
}

// NewTile wraps raw tile bytes. The bytes are copied so the caller may
// reuse its buffer.
func NewTile(data []byte) *Tile {
	t := &Tile{}
	if len(data) > 0 {
		t.data = make([]byte, len(data))
		copy(t.data, data)
	}
	return t
}

// Data returns the tile bytes.
func (t *Tile) Data() []byte {
	if t == nil {
		return nil
	}
	return t.data
}

// Size returns the tile length in bytes.
func (t *Tile) Size() int {
	if t == nil {
		return 0
	}
	return len(t.data)
}
