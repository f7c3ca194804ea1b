package core

// Fields is a persistent, ordered chain of fields. The nil *Fields is
// the empty chain. Append never modifies the receiver.
type Fields struct {
	prev  *Fields
	field Field
	n     int
}

// Append returns a new chain holding f after every field of fs.
func (fs *Fields) Append(f Field) *Fields {
	return &Fields{prev: fs, field: f, n: fs.Len() + 1}
}

// Len returns the number of fields in the chain
func (fs *Fields) Len() int {
	if fs == nil {
		return 0
	}
	return fs.n
}

// Slice returns the fields in insertion order
func (fs *Fields) Slice() []Field {
	out := make([]Field, fs.Len())
	for node := fs; node != nil; node = node.prev {
		out[node.n-1] = node.field
	}
	return out
}
