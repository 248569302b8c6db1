package config

import (
	"fmt"
	"sort"
)

// Preset is a named decorator chain stored in the config file.
type Preset struct {
	// Description is shown by tooling; it does not affect output.
	Description string `yaml:"description,omitempty"`

	// Report is the base report kind, e.g. "sales".
	Report string `yaml:"report"`

	// Decorators are applied in order, innermost first.
	Decorators []string `yaml:"decorators,omitempty"`
}

// File represents the structure of the .reportchain configuration file.
type File struct {
	// Default names the preset used by generate when no chain is given.
	Default string `yaml:"default,omitempty"`

	// Presets maps preset names to chains.
	Presets map[string]Preset `yaml:"presets,omitempty"`
}

// Lookup returns the preset with the given name.
// A nil File has no presets.
func (f *File) Lookup(name string) (Preset, error) {
	if f == nil {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return p, nil
}

// Names returns preset names in sorted order.
func (f *File) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPreset returns the default preset, if one is configured.
func (f *File) DefaultPreset() (string, Preset, bool) {
	if f == nil || f.Default == "" {
		return "", Preset{}, false
	}
	p, ok := f.Presets[f.Default]
	return f.Default, p, ok
}

// Validate checks that every preset names a report and that the default
// preset exists. Kind names are checked later when the chain is parsed.
func (f *File) Validate() error {
	for _, name := range f.Names() {
		if f.Presets[name].Report == "" {
			return fmt.Errorf("%w: %q", ErrPresetMissingReport, name)
		}
	}
	if f.Default != "" {
		if _, ok := f.Presets[f.Default]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDefaultPreset, f.Default)
		}
	}
	return nil
}
