package platform

// NewPlatform creates the platform implementation for the current OS
func NewPlatform() (Platform, error) {
	return newPlatform()
}

// UnsupportedPlatformError represents an error for unsupported platforms
type UnsupportedPlatformError struct {
	OS string
}

func (e *UnsupportedPlatformError) Error() string {
	return "unsupported platform: " + e.OS
}
