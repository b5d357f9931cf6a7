package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/confreport/internal/model"
	"gopkg.in/yaml.v3"
)

// Load reads a snapshot file. YAML and JSON are both accepted; JSON is
// parsed by the YAML decoder, which understands it as a subset.
func Load(path string) (*model.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", "":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided snapshot path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrSnapshotNotFound)
		}
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read reads a snapshot from r, e.g. standard input.
func Read(r io.Reader) (*model.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates snapshot data.
func Parse(data []byte) (*model.Snapshot, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingProjectName
		}
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return f.ToModel()
}

// ToModel validates the file and converts it into a model.Snapshot.
func (f *File) ToModel() (*model.Snapshot, error) {
	if f.Project.Name == "" {
		return nil, ErrMissingProjectName
	}

	path := f.Project.Path
	if path == "" {
		path = ":"
	}

	incubating := make(map[string]bool, len(f.IncubatingAttributes))
	for _, name := range f.IncubatingAttributes {
		incubating[name] = true
	}

	s := &model.Snapshot{
		Project: model.Project{
			Path:    path,
			Name:    f.Project.Name,
			Group:   f.Project.Group,
			Version: f.Project.Version,
		},
		IncubatingLegend: f.IncubatingLegend,
		Configurations:   make([]model.Configuration, 0, len(f.Configurations)),
	}

	names := make(map[string]bool, len(f.Configurations))
	for i, cf := range f.Configurations {
		if cf.Name == "" {
			return nil, fmt.Errorf("configuration #%d: %w", i+1, ErrMissingConfigurationName)
		}
		if names[cf.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConfiguration, cf.Name)
		}
		names[cf.Name] = true

		c, err := cf.toModel(incubating)
		if err != nil {
			return nil, fmt.Errorf("configuration %s: %w", cf.Name, err)
		}
		s.Configurations = append(s.Configurations, c)
	}

	return s, nil
}

// toModel converts one configuration.
func (cf ConfigurationFile) toModel(incubating map[string]bool) (model.Configuration, error) {
	c := model.Configuration{
		Name:        cf.Name,
		Description: cf.Description,
		Resolvable:  cf.Resolvable,
		Consumable:  cf.Consumable,
		Extends:     cf.ExtendsFrom,
	}

	seen := make(map[string]bool, len(cf.Attributes))
	for _, af := range cf.Attributes {
		if seen[af.Name] {
			return model.Configuration{}, fmt.Errorf("%w: %s", ErrDuplicateAttribute, af.Name)
		}
		seen[af.Name] = true

		c.Attributes = append(c.Attributes, model.Attribute{
			Name:       af.Name,
			Value:      model.StringValue(af.Value),
			Incubating: af.Incubating || incubating[af.Name],
		})
	}

	for _, capf := range cf.Capabilities {
		if capf.Name == "" {
			return model.Configuration{}, ErrMissingCapabilityName
		}
		c.Capabilities = append(c.Capabilities, model.Capability{
			Group:   capf.Group,
			Name:    capf.Name,
			Version: capf.Version,
		})
	}

	return c, nil
}
