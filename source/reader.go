package source

// Reader adapts a Source to io.Reader, one byte per draw. It lets the
// synthesis layer feed deterministic entropy into consumers that read raw
// bytes, such as ULID construction.
type Reader struct {
	src Source
}

// NewReader creates a Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Read fills p with one draw per byte. It never fails and always fills the
// whole buffer, whatever its length.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Draw(256, 0))
	}
	return len(p), nil
}
