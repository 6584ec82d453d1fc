package testfixtures

import (
	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/project"
)

// MetadataBuilder provides a builder pattern for creating test project metadata
type MetadataBuilder struct {
	meta project.Metadata
}

// NewMetadataBuilder creates a new MetadataBuilder with sensible defaults
func NewMetadataBuilder() *MetadataBuilder {
	return &MetadataBuilder{
		meta: project.Metadata{
			Name:        "foo",
			Version:     "0.1.0",
			Description: "d",
			Authors:     []string{"a"},
		},
	}
}

// WithName sets the project name
func (b *MetadataBuilder) WithName(name string) *MetadataBuilder {
	b.meta.Name = name
	return b
}

// WithVersion sets the project version
func (b *MetadataBuilder) WithVersion(version string) *MetadataBuilder {
	b.meta.Version = version
	return b
}

// WithDescription sets the project description
func (b *MetadataBuilder) WithDescription(description string) *MetadataBuilder {
	b.meta.Description = description
	return b
}

// WithAuthors replaces the author list
func (b *MetadataBuilder) WithAuthors(authors ...string) *MetadataBuilder {
	b.meta.Authors = authors
	return b
}

// WithIcon sets an icon override path
func (b *MetadataBuilder) WithIcon(path string) *MetadataBuilder {
	b.meta.IconPath = path
	return b
}

// WithTrigger sets the Albert trigger
func (b *MetadataBuilder) WithTrigger(trigger string) *MetadataBuilder {
	b.meta.Trigger = trigger
	return b
}

// Build returns the metadata
func (b *MetadataBuilder) Build() project.Metadata {
	m := b.meta
	m.Authors = append([]string(nil), b.meta.Authors...)
	return m
}
