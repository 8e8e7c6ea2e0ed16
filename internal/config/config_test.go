package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Verify())
	require.Equal(t, "kin_to_uniprot.csv", c.AccessionsPath())
	require.Equal(t, "uniprot_to_family.csv", c.FamiliesPath())
}

func TestUnmarshalOverlaysDefaults(t *testing.T) {
	c, err := Unmarshal([]byte(`
reference:
  dir: ref
  families: other/fams.csv
inputs:
  - raw_data_1647_no_overlaps_formatted_95.csv
  - raw_data_7530_no_overlaps_formatted_50.csv
seed: 7
`))
	require.NoError(t, err)

	want := Default()
	want.Reference = Reference{Dir: "ref", Families: "other/fams.csv"}
	want.Inputs = []string{
		"raw_data_1647_no_overlaps_formatted_95.csv",
		"raw_data_7530_no_overlaps_formatted_50.csv",
	}
	want.Seed = 7
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	require.Equal(t, filepath.Join("ref", "kin_to_uniprot.csv"), c.AccessionsPath())
	require.Equal(t, "other/fams.csv", c.FamiliesPath())
}

func TestUnmarshalRejectsUnknownKeys(t *testing.T) {
	_, err := Unmarshal([]byte("sead: 3\n"))
	require.ErrorIs(t, err, ErrConfigInvalid)
}

func TestUnmarshalEmpty(t *testing.T) {
	c, err := Unmarshal(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestVerify(t *testing.T) {
	cases := map[string]func(*Config){
		"no output dir":       func(c *Config) { c.Output.Dir = "" },
		"no mapping":          func(c *Config) { c.Output.Mapping = "" },
		"families with slash": func(c *Config) { c.Output.Families = "x/large_fams.csv" },
		"empty input":         func(c *Config) { c.Inputs = []string{"a.csv", ""} },
		"no kinase column":    func(c *Config) { c.KinaseColumn = "" },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(&c)
		if err := c.Verify(); !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("%s: want ErrConfigInvalid, got %v", name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadFromDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "kinvec.yaml")
	require.NoError(t, os.WriteFile(p, []byte("output:\n  dir: out\n"), 0o644))
	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "out", c.Output.Dir)
	require.Equal(t, "kin_to_vec.csv", c.Output.Mapping)
}

func TestUnmarshalCommentOnly(t *testing.T) {
	c, err := Unmarshal([]byte("# nothing here\n"))
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}
