package launchers

import _ "embed"

// Embedded plugin templates and artwork. They are read-only for the lifetime
// of the process.
var (
	//go:embed assets/icon.png
	DefaultIcon []byte

	//go:embed assets/alfred/info.plist
	alfredInfoPlist string

	//go:embed assets/hain/index.js
	hainIndexJS string

	//go:embed assets/hain/package.json
	hainPackageJSON string

	//go:embed assets/albert/__init__.py
	albertModule string
)
