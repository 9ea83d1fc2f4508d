package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/elf-inspect/elf"
	"github.com/wippyai/elf-inspect/internal/elftest"
)

func writeSample(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.elf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunModes(t *testing.T) {
	path := writeSample(t, elftest.Sample(elf.Class64, elf.DataLSB).Build())

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "brief",
			args:    []string{path},
			want:    []string{"ELF File Information", "Machine: x86-64"},
			notWant: []string{"Program Headers", "Section Headers"},
		},
		{
			name:    "program",
			args:    []string{"-p", path},
			want:    []string{"Program Headers"},
			notWant: []string{"ELF File Information", "Section Headers"},
		},
		{
			name:    "section",
			args:    []string{"--section", path},
			want:    []string{"Section Headers", ".bss"},
			notWant: []string{"ELF File Information", "Program Headers"},
		},
		{
			name: "all",
			args: []string{"-a", "--no-color", path},
			want: []string{"ELF File Information", "Program Headers", "Section Headers", "Key to Flags:"},
		},
		{
			name: "wide",
			args: []string{"-s", "-w", path},
			want: []string{"EntSize"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(tt.args...)
			require.Equal(t, 0, code, errOut)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRunBadMagic(t *testing.T) {
	data := elftest.Sample(elf.Class64, elf.DataLSB).Build()
	data[0] = 0
	path := writeSample(t, data)

	code, out, errOut := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error:")
	assert.Contains(t, errOut, "invalid_magic")
}

func TestRunMissingFile(t *testing.T) {
	code, _, errOut := runCLI(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error:")
}

func TestRunInteractiveNeedsTerminal(t *testing.T) {
	path := writeSample(t, elftest.Sample(elf.Class64, elf.DataLSB).Build())
	code, _, errOut := runCLI("-i", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "needs a terminal")
}

func TestRunUsageErrors(t *testing.T) {
	code, _, _ := runCLI()
	assert.Equal(t, 2, code)

	code, _, _ = runCLI("--log-level", "loud", "x")
	assert.Equal(t, 2, code)
}

func TestRunHelpAndVersion(t *testing.T) {
	code, out, errOut := runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--program")
	assert.Empty(t, errOut)

	code, out, errOut = runCLI("--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version+"\n", out)
	assert.Empty(t, errOut)
}

func TestRunDebugLogging(t *testing.T) {
	path := writeSample(t, elftest.Sample(elf.Class32, elf.DataMSB).Build())
	code, _, errOut := runCLI("--log-level", "debug", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "decoded elf")
}
