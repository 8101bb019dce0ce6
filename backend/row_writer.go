package backend

// RowWriter is an optional optimization for rewriting single rows.
// The runtime uses it to flush only the rows that changed between frames.
type RowWriter interface {
	SetRow(y int, text string)
}
