package launchers

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/klauspost/compress/zip"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

const (
	alfredExtension    = "alfredworkflow"
	alfredPlistEntry   = "info.plist"
	alfredIconEntry    = "icon.png"
	defaultOpenCommand = "open"
)

const alfredHelp = `
Install completed!!
The Alfred Powerpack is required to use workflows.
Alfred has been asked to import the generated workflow.`

// Alfred packages the plugin as an .alfredworkflow archive and hands it to
// Alfred through the desktop open action.
type Alfred struct {
	base
}

// NewAlfred creates the Alfred backend
func NewAlfred(meta project.Metadata, conf *LaunchConfig, deps Deps) *Alfred {
	return &Alfred{base: newBase(launcher.KindAlfred, meta, conf, deps)}
}

// Name implements ports.Backend
func (a *Alfred) Name() string {
	return launcher.KindAlfred.String()
}

// BeforeCheck implements ports.Backend
func (a *Alfred) BeforeCheck() error {
	return a.requirePlatform(launcher.KindAlfred, launcher.PlatformMacOS)
}

// Gen writes <name>.alfredworkflow containing info.plist and icon.png.
func (a *Alfred) Gen(_ context.Context) ([]launcher.Artifact, error) {
	if err := a.conf.EnsureWorkingDirectory(); err != nil {
		return nil, err
	}

	plist, err := a.deps.Renderer.Render(alfredInfoPlist, a.plistParams())
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", alfredPlistEntry, err)
	}
	icon, err := a.conf.ResolveIcon(a.meta)
	if err != nil {
		return nil, err
	}

	archive, err := buildWorkflowArchive([]byte(plist), icon)
	if err != nil {
		return nil, err
	}

	artifact, err := a.write(a.workflowFileName(), archive)
	if err != nil {
		return nil, err
	}
	return []launcher.Artifact{artifact}, nil
}

// Deploy opens the archive with the platform's default handler, which is Alfred.
func (a *Alfred) Deploy(ctx context.Context, artifacts []launcher.Artifact) (string, error) {
	if len(artifacts) == 0 {
		return "", fmt.Errorf("%w: no workflow archive to open", launcher.ErrNotFound)
	}

	open := a.deps.OpenCommand
	if open == "" {
		open = defaultOpenCommand
	}

	paths := launcher.Paths(artifacts)
	a.log.Debug().Str("command", open).Strs("paths", paths).Msg("opening workflow")
	if _, err := a.deps.Runner.Run(ctx, open, paths...); err != nil {
		return "", err
	}
	return artifacts[0].Path, nil
}

// CompletionMessage implements ports.Backend
func (a *Alfred) CompletionMessage(_ string) string {
	return alfredHelp
}

func (a *Alfred) workflowFileName() string {
	return a.meta.Name + "." + alfredExtension
}

func (a *Alfred) plistParams() map[string]string {
	return map[string]string{
		"name":        xmlEscape(a.meta.Name),
		"version":     xmlEscape(a.meta.Version),
		"description": xmlEscape(a.meta.Description),
		"author":      xmlEscape(a.meta.Author()),
		"build_id":    xmlEscape(a.meta.BuildID()),
	}
}

// buildWorkflowArchive zips the plist and icon under their fixed entry names.
func buildWorkflowArchive(plist, icon []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{alfredPlistEntry, plist},
		{alfredIconEntry, icon},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to add %s to workflow: %w", launcher.ErrIO, e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("%w: failed to write %s to workflow: %w", launcher.ErrIO, e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finish workflow archive: %w", launcher.ErrIO, err)
	}
	return buf.Bytes(), nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ ports.Backend = (*Alfred)(nil)
