package component

// Camera follows its target horizontally. The camera entity's Transform holds
// the resulting world-to-screen offset.
type Camera struct {
	TargetName    string
	ViewportWidth float64
}

var CameraComponent = NewComponent[Camera]()
