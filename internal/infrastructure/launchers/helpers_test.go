package launchers

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/testfixtures"
	"github.com/cargo-launcher/cargo-launcher/internal/infrastructure/platform"
	templateinfra "github.com/cargo-launcher/cargo-launcher/internal/infrastructure/template"
)

const testWorkDir = "/project/target/launcher"

var testIcon = []byte("\x89PNG fallback")

type testSetup struct {
	fs     afero.Fs
	conf   *LaunchConfig
	deps   Deps
	runner *testfixtures.MockCommandRunner
}

func newTestSetup(t *testing.T, osName launcher.Platform, vars map[string]string) testSetup {
	t.Helper()

	fs := afero.NewMemMapFs()
	runner := &testfixtures.MockCommandRunner{}
	return testSetup{
		fs:   fs,
		conf: NewLaunchConfig(fs, testWorkDir, testIcon),
		deps: Deps{
			Env:      platform.Static(osName, vars),
			Renderer: templateinfra.NewRenderer(),
			Runner:   runner,
			Logger:   zerolog.Nop(),
		},
		runner: runner,
	}
}

func listDir(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
