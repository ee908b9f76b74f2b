package visionio

// Property identifies a device property that can be set or queried.
type Property int

const (
	// FrameWidth is the capture frame width in pixels.
	FrameWidth Property = iota
	// FrameHeight is the capture frame height in pixels.
	FrameHeight
	// FrameRate is the capture frame rate in frames per second.
	FrameRate
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case FrameWidth:
		return "width"
	case FrameHeight:
		return "height"
	case FrameRate:
		return "fps"
	default:
		return "unknown"
	}
}

// Device is the capability required from a camera handle.
// Implementations are not safe for concurrent use; a Device is owned by
// exactly one Source for its lifetime.
type Device interface {
	// Set applies a property value. Best effort: a false return or a
	// subsequent Get mismatch means the device kept its own value.
	Set(p Property, value float64) bool

	// Get returns the current value of a property.
	Get(p Property) float64

	// Grab performs one blocking capture attempt. The returned frame is
	// in the device's native channel order.
	Grab() (Frame, bool)

	// Close releases the underlying resources.
	Close() error
}
