package launcher

import "errors"

// Error kinds surfaced by the install pipeline and its collaborators.
// Callers match them with errors.Is; the wrapped message carries the detail.
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNotFound            = errors.New("not found")
	ErrIO                  = errors.New("io error")
	ErrTemplateRender      = errors.New("template render error")
	ErrManifestParse       = errors.New("manifest parse error")
	ErrProcessSpawn        = errors.New("process spawn error")
	ErrProcessExit         = errors.New("process exited with non-zero status")
	ErrInvalidMetadata     = errors.New("invalid project metadata")
	ErrUnknownLauncher     = errors.New("unknown launcher")
)
