package render

import "io"

// RenderAll reads the full contents of a Renderer and returns the slice read.
// io.EOF is not returned as an error.
func RenderAll(r Renderer) ([]Triangle3, error) {
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err := r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err == io.EOF {
			return result, nil
		} else if err != nil {
			return result, err
		}
	}
}

// triangle3Buffer holds triangles produced but not yet read.
type triangle3Buffer struct {
	buf []Triangle3
}

// Read moves buffered triangles into t.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends triangles to this buffer.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}

func (b *triangle3Buffer) Len() int { return len(b.buf) }
