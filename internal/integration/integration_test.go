// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kinvec/internal/app"
)

const (
	accessions = "GENE,KIN_ACC_ID\nABL1,P00519-1\nBRAF,P15056\nAKT1,P31749\nCDK2,P24941\n"
	families   = "Uniprot,Family\nP00519,tk\nP15056,TKL\nP31749,agc\n"
	inputA     = "lab_name,orig_lab_name,seq\nABL1,ABL1,AAA\nCDK2,CDK2,CCC\nBRAF,BRAF,GGG\n"
	inputB     = "lab_name,orig_lab_name,seq\nAKT1,AKT1,KKK\nABL1,ABL1,TTT\nBRAF,BRAF,SSS\nAKT1,AKT1,YYY\nABL1,ABL1,WWW\nCDK2,CDK2,QQQ\n"

	wantMapping = "Kinase,Family,Vector\n" +
		"ABL1,TK,\"[1, 0, 0]\"\n" +
		"BRAF,TKL,\"[0, 1, 0]\"\n" +
		"AKT1,AGC,\"[0, 0, 1]\"\n" +
		"CDK2,,\n"
)

type fixture struct {
	dir, ref, out, mapping string
	a, b                   string
}

func write(t *testing.T, path, data string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		ref:     filepath.Join(dir, "ref"),
		out:     filepath.Join(dir, "data"),
		mapping: filepath.Join(dir, "kin_to_vec.csv"),
	}
	write(t, filepath.Join(f.ref, "kin_to_uniprot.csv"), accessions)
	write(t, filepath.Join(f.ref, "uniprot_to_family.csv"), families)
	f.a = write(t, filepath.Join(dir, "a.csv"), inputA)
	f.b = write(t, filepath.Join(dir, "b.csv"), inputB)
	return f
}

func (f fixture) args(extra ...string) []string {
	return append([]string{
		"--reference-dir", f.ref,
		"--out-dir", f.out,
		"--mapping", f.mapping,
		"--log-level", "error",
	}, extra...)
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)

	var out, errBuf bytes.Buffer
	code := app.Run(f.args(f.a, f.b), &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	require.Equal(t, "Not found -- CDK2 P24941\n", out.String())
	require.Equal(t, wantMapping, read(t, f.mapping))
	require.Equal(t, "TK\nTKL\nAGC", read(t, filepath.Join(f.out, "large_fams.csv")))

	// a.csv: kept AAA, GGG; seed-0 permutation of 2 is [0 1]
	require.Equal(t, "AAA\nGGG", read(t, filepath.Join(f.out, "2_motifs.csv")))
	require.Equal(t, "1,0,0\n0,1,0", read(t, filepath.Join(f.out, "2_motifxFamMatrix.csv")))

	// b.csv: kept KKK TTT SSS YYY WWW; seed-0 permutation of 5 is [2 1 0 4 3]
	require.Equal(t, "SSS\nTTT\nKKK\nWWW\nYYY", read(t, filepath.Join(f.out, "5_motifs.csv")))
	require.Equal(t, "0,1,0\n1,0,0\n0,0,1\n1,0,0\n0,0,1", read(t, filepath.Join(f.out, "5_motifxFamMatrix.csv")))

	require.Contains(t, errBuf.String(), "WARN: 1 of 4 kinases have no family")
}

func TestQuietSuppressesWarnings(t *testing.T) {
	f := newFixture(t)
	var out, errBuf bytes.Buffer
	code := app.Run(f.args("-q", f.a), &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	require.Empty(t, errBuf.String())
	require.Equal(t, "Not found -- CDK2 P24941\n", out.String())
}

func TestRepeatedRunsAreIdentical(t *testing.T) {
	f := newFixture(t)
	run := func() (string, string) {
		var out, errBuf bytes.Buffer
		require.Equal(t, 0, app.Run(f.args(f.b, f.a), &out, &errBuf), errBuf.String())
		return read(t, f.mapping), read(t, filepath.Join(f.out, "5_motifxFamMatrix.csv"))
	}
	m1, v1 := run()
	m2, v2 := run()
	require.Equal(t, m1, m2)
	require.Equal(t, v1, v2)
}

func TestConfigFileDrivesRun(t *testing.T) {
	f := newFixture(t)
	cfg := "reference:\n  dir: " + f.ref + "\n" +
		"inputs:\n  - " + f.a + "\n" +
		"output:\n  dir: " + f.out + "\n  mapping: " + f.mapping + "\n"
	p := write(t, filepath.Join(f.dir, "kinvec.yaml"), cfg)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--config", p, "--log-level", "error"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	require.FileExists(t, filepath.Join(f.out, "2_motifs.csv"))
}

func TestExitCodes(t *testing.T) {
	f := newFixture(t)

	var out, errBuf bytes.Buffer
	require.Equal(t, 0, app.Run(nil, &out, &errBuf))
	require.Contains(t, out.String(), "Usage: kinvec")

	out.Reset()
	require.Equal(t, 0, app.Run([]string{"--version"}, &out, &errBuf))
	require.Contains(t, out.String(), "kinvec version")

	errBuf.Reset()
	require.Equal(t, 2, app.Run([]string{"--no-such-flag", f.a}, &out, &errBuf))

	errBuf.Reset()
	code := app.Run([]string{"--reference-dir", filepath.Join(f.dir, "missing"), "--out-dir", f.out, "--mapping", f.mapping, f.a}, &out, &errBuf)
	require.Equal(t, 3, code)
	require.Contains(t, errBuf.String(), "load reference tables")

	errBuf.Reset()
	bad := write(t, filepath.Join(f.dir, "bad.csv"), "seq\nAAA\n")
	require.Equal(t, 3, app.Run(f.args(bad), &out, &errBuf))
	require.Contains(t, errBuf.String(), "lab_name")
}
