// Package config holds the run configuration: where the reference tables
// live, which motif tables to process, and where artifacts go. It can be
// loaded from a YAML file and overridden by command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"kinvec/internal/dataset"
	"kinvec/internal/family"
	"kinvec/internal/kinase"
)

var ErrConfigNotFound = errors.New("config file is not found")
var ErrConfigInvalid = errors.New("config is invalid")

type Reference struct {
	// directory holding both tables; used when a path below is empty
	Dir        string `yaml:"dir,omitempty"`
	Accessions string `yaml:"accessions,omitempty"`
	Families   string `yaml:"families,omitempty"`
}

type Output struct {
	// root for the family list and the motif/matrix pairs
	Dir string `yaml:"dir,omitempty"`
	// mapping table path; relative paths are taken from the working directory
	Mapping string `yaml:"mapping,omitempty"`
	// family list name inside Dir
	Families string `yaml:"families,omitempty"`
}

type Config struct {
	Reference    Reference `yaml:"reference"`
	Inputs       []string  `yaml:"inputs,omitempty"`
	Output       Output    `yaml:"output"`
	Seed         uint64    `yaml:"seed"`
	KinaseColumn string    `yaml:"kinase_column,omitempty"`
}

// Default matches the layout the original training data was produced with.
func Default() Config {
	return Config{
		Output: Output{
			Dir:      "data",
			Mapping:  family.MappingFile,
			Families: family.FamiliesListFile,
		},
		Seed:         dataset.DefaultSeed,
		KinaseColumn: kinase.DefaultColumn,
	}
}

// Load reads a YAML file on top of Default().
func Load(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w at %s", ErrConfigNotFound, path)
		}
		return Config{}, err
	}
	return Unmarshal(buf)
}

// Unmarshal decodes YAML on top of Default(). Unknown keys are rejected.
func Unmarshal(buf []byte) (Config, error) {
	c := Default()
	if len(buf) == 0 {
		return c, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return c, nil
}

// AccessionsPath resolves the accession table location.
func (c Config) AccessionsPath() string {
	return refPath(c.Reference.Dir, c.Reference.Accessions, family.AccessionsFile)
}

// FamiliesPath resolves the family table location.
func (c Config) FamiliesPath() string {
	return refPath(c.Reference.Dir, c.Reference.Families, family.FamiliesFile)
}

func refPath(dir, explicit, def string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(dir, def)
}

// Verify
//
// # Return
//
// nil if c can drive a run. Otherwise, an ErrConfigInvalid error.
func (c Config) Verify() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir is empty", ErrConfigInvalid)
	}
	if c.Output.Mapping == "" {
		return fmt.Errorf("%w: output.mapping is empty", ErrConfigInvalid)
	}
	if c.Output.Families == "" {
		return fmt.Errorf("%w: output.families is empty", ErrConfigInvalid)
	}
	if filepath.Base(c.Output.Families) != c.Output.Families {
		return fmt.Errorf("%w: output.families must be a bare file name: %s", ErrConfigInvalid, c.Output.Families)
	}
	if c.KinaseColumn == "" {
		return fmt.Errorf("%w: kinase_column is empty", ErrConfigInvalid)
	}
	for i, in := range c.Inputs {
		if in == "" {
			return fmt.Errorf("%w: inputs[%d] is empty", ErrConfigInvalid, i)
		}
	}
	return nil
}
