package stream

// A Scene renders the current animated values into a Frame. dt is the frame
// delta in seconds; scenes may advance purely visual state with it, but
// scheduler-owned animations have already been ticked by the time a scene
// renders.
type Scene interface {
	CalculateFrame(dt float64) *Frame
}
