package project

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

// Metadata describes the project a launcher plugin is generated for.
// It is built once per run by a manifest reader and never mutated afterwards;
// the With* helpers return modified copies.
type Metadata struct {
	Name        string   `validate:"required,ne=.,ne=..,excludesall=/\\"`
	Version     string   `validate:"required"`
	Description string
	Authors     []string
	// IconPath overrides the embedded fallback icon when set.
	IconPath string
	// Trigger is the Albert query trigger; the project name is used when empty.
	Trigger string
	// ManifestDir is the directory of the manifest the metadata was read from.
	ManifestDir string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the metadata can be used to render and deploy a plugin.
func (m Metadata) Validate() error {
	if err := validate.Struct(m); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", launcher.ErrInvalidMetadata, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", launcher.ErrInvalidMetadata, err)
	}
	return nil
}

// Author joins the project authors the way they are rendered into templates.
func (m Metadata) Author() string {
	return strings.Join(m.Authors, ", ")
}

// BuildID combines the project name with a stable hash of it.
func (m Metadata) BuildID() string {
	return m.Name + "-" + strconv.FormatUint(NameHash(m.Name), 10)
}

// EffectiveTrigger returns the configured trigger or the project name.
func (m Metadata) EffectiveTrigger() string {
	if m.Trigger != "" {
		return m.Trigger
	}
	return m.Name
}

// HasIconOverride reports whether an explicit icon path is configured.
func (m Metadata) HasIconOverride() bool {
	return m.IconPath != ""
}

// WithName returns a copy of m using name
func (m Metadata) WithName(name string) Metadata {
	m.Authors = append([]string(nil), m.Authors...)
	m.Name = name
	return m
}

// WithIcon returns a copy of m using the icon at path
func (m Metadata) WithIcon(path string) Metadata {
	m.Authors = append([]string(nil), m.Authors...)
	m.IconPath = path
	return m
}

// WithTrigger returns a copy of m using trigger
func (m Metadata) WithTrigger(trigger string) Metadata {
	m.Authors = append([]string(nil), m.Authors...)
	m.Trigger = trigger
	return m
}

// NameHash is the 64-bit FNV-1a hash of name.
func NameHash(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}
