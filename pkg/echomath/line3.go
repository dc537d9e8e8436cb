package echomath

// Line3 is a segment between two points. Endpoint order carries no meaning.
type Line3 struct {
	P1, P2 Vector3
}

// L3 creates a new Line3.
func L3(p1, p2 Vector3) Line3 {
	return Line3{p1, p2}
}

// Equals reports whether both lines join the same endpoints, in either
// order.
func (l Line3) Equals(o Line3) bool {
	return (l.P1.Equals(o.P1) && l.P2.Equals(o.P2)) ||
		(l.P1.Equals(o.P2) && l.P2.Equals(o.P1))
}

// Reverse returns the line with its endpoints swapped.
func (l Line3) Reverse() Line3 {
	return Line3{l.P2, l.P1}
}

// Length returns the distance between the endpoints.
func (l Line3) Length() float32 {
	return l.P1.Dist(l.P2)
}

// Dump writes the line to the diagnostic output.
func (l Line3) Dump() {
	DumpLine3(l)
}

// DumpLine3 writes both endpoints, bracketed, one diagnostic line each.
func DumpLine3(l Line3) {
	printLine("lines3f: [")
	l.P1.Dump()
	printLine(",")
	l.P2.Dump()
	printLine("]")
}
