package cssast

// LayerName is a "."-separated sequence of idents.
// Segments is empty when the grammar had to force forward progress
// without finding a leading ident (the "@layer .foo;" guard).
type LayerName struct {
	Span     Span
	Segments []string
}

// LayerPrelude covers all three @layer prelude shapes:
//   - Names == nil: anonymous layer, block required.
//   - len(Names) == 1: single named layer, block or ";" both legal.
//   - len(Names) > 1: comma-separated list, ";" required, no block.
type LayerPrelude struct {
	Span  Span
	Names []LayerName
}

func (*LayerPrelude) isPrelude() {}
