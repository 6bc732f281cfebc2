package anim

// AnimError represents an animation playback error
type AnimError string

// Error implements the error interface
func (e AnimError) Error() string {
	return string(e)
}

const (
	// ErrNotInitialized indicates playback was requested before a
	// resource was loaded
	ErrNotInitialized = AnimError("animation player not initialized")

	// ErrMissingResource indicates an empty resource reference
	ErrMissingResource = AnimError("animation resource reference is required")
)
