// Package descriptor builds typeinspect.Type values from YAML manifests.
// It is used for types the schema generator cannot reflect on.
package descriptor

import (
	"fmt"
	"strings"

	"github.com/andriiyaremenko/typeinspect"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Manifest is the decoded form of a descriptor file.
type Manifest struct {
	Types []Descriptor `mapstructure:"types"`
}

// Descriptor describes a single type and its generic arguments.
type Descriptor struct {
	ID        string       `mapstructure:"id"`
	Package   string       `mapstructure:"package"`
	Name      string       `mapstructure:"name"`
	Kind      string       `mapstructure:"kind"`
	Arguments []Descriptor `mapstructure:"arguments"`
}

// Entry pairs a manifest id with the resolved type.
type Entry struct {
	ID   string
	Type typeinspect.Type
}

// Parse decodes a YAML manifest.
// Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var m Manifest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &m,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	return &m, nil
}

// Entries resolves every top-level descriptor.
// Entries without id are keyed by their type string.
func (m *Manifest) Entries() ([]Entry, error) {
	entries := make([]Entry, 0, len(m.Types))
	seen := make(map[string]struct{}, len(m.Types))

	for i, d := range m.Types {
		path := fmt.Sprintf("types[%d]", i)

		t, err := d.Resolve(path)
		if err != nil {
			return nil, err
		}

		id := d.ID
		if id == "" {
			id = t.String()
		}

		if _, ok := seen[id]; ok {
			return nil, NewValidationError(path, fmt.Sprintf("duplicate id %q", id))
		}

		seen[id] = struct{}{}
		entries = append(entries, Entry{ID: id, Type: t})
	}

	return entries, nil
}

// Resolve builds typeinspect.Type from d.
// path is used in validation errors.
func (d Descriptor) Resolve(path string) (typeinspect.Type, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, NewValidationError(path, "name is required")
	}

	class, err := d.class(path)
	if err != nil {
		return nil, err
	}

	args := make([]typeinspect.Type, 0, len(d.Arguments))
	for i, arg := range d.Arguments {
		t, err := arg.Resolve(fmt.Sprintf("%s.arguments[%d]", path, i))
		if err != nil {
			return nil, err
		}

		args = append(args, t)
	}

	return typeinspect.TypeOf(class, args...), nil
}

func (d Descriptor) class(path string) (typeinspect.Class, error) {
	kind, err := parseKind(d.Kind)
	if err != nil {
		return nil, NewValidationError(path, err.Error())
	}

	qualified := d.Name
	if d.Package != "" {
		qualified = d.Package + "." + d.Name
	}

	if c, ok := typeinspect.Builtin(qualified); ok && (d.Kind == "" || c.Kind() == kind) {
		return c, nil
	}

	return typeinspect.NewClass(d.Package, d.Name, kind), nil
}

func parseKind(s string) (typeinspect.Kind, error) {
	switch strings.ToLower(s) {
	case "", "object":
		return typeinspect.KindObject, nil
	case "list":
		return typeinspect.KindList, nil
	case "array":
		return typeinspect.KindArray, nil
	default:
		return typeinspect.KindObject, fmt.Errorf("unknown kind %q", s)
	}
}
