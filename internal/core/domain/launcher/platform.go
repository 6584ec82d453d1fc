package launcher

// Platform is an operating system identifier in runtime.GOOS form.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// String implements the Stringer interface
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns a human readable platform name for messages.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformMacOS:
		return "macOS"
	case PlatformLinux:
		return "Linux"
	case PlatformWindows:
		return "Windows"
	case "":
		return "unknown"
	default:
		return string(p)
	}
}
