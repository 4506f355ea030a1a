// Package config loads an optional YAML profile that supplies default
// values for the listing, formatter, and CPU-variant options, so a
// project can check in one file instead of repeating flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dis68k/dis68k/listing"
	"github.com/dis68k/dis68k/m68k"
)

// Profile is the on-disk shape of a listing defaults file.
type Profile struct {
	Cpu             string `yaml:"cpu"`
	Uppercase       bool   `yaml:"uppercase"`
	ShowAddresses   *bool  `yaml:"show_addresses"`
	ShowHex         *bool  `yaml:"show_hex"`
	ShowLineNumbers *bool  `yaml:"show_line_numbers"`
}

// Load reads and parses a YAML profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return p, nil
}

// ApplyTo merges p's values onto base, returning the resulting listing
// options. Unset boolean fields (nil in the YAML) leave base's value
// untouched; Cpu, when given, must name a known CpuVariant.
func (p Profile) ApplyTo(base listing.Options) (listing.Options, error) {
	opts := base
	opts.Uppercase = p.Uppercase
	if p.ShowAddresses != nil {
		opts.ShowAddresses = *p.ShowAddresses
	}
	if p.ShowHex != nil {
		opts.ShowHex = *p.ShowHex
	}
	if p.ShowLineNumbers != nil {
		opts.ShowLineNumbers = *p.ShowLineNumbers
	}
	if p.Cpu != "" {
		variant, ok := m68k.ParseCpuVariant(p.Cpu)
		if !ok {
			return opts, fmt.Errorf("config: unknown cpu variant %q", p.Cpu)
		}
		opts.Cpu = variant
	}
	return opts, nil
}
