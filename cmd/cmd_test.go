package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	assert.Contains(t, out, "/assessment/introduction")
	assert.Contains(t, out, "/assessment/guidance")
	assert.Contains(t, out, "Step 6 of 6")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "navigator")
}

func TestBankValidateDefault(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("..", "internal", "bank", "data", "default.yaml"))
	require.NoError(t, err)

	out, err := execute(t, "bank", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (version v1.0.0, 2 modules")
}

func TestBankValidateMissingFile(t *testing.T) {
	_, err := execute(t, "bank", "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBankListModule(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "bank", "list", "--module", "technical")
	require.NoError(t, err)

	assert.Contains(t, out, "apt_1")
	assert.NotContains(t, out, "interest_1")
	assert.Contains(t, out, "9 questions")
}

func TestPlainReadsCommandInput(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("q\n"))
	out, err := execute(t, "plain", "--module", "technical")
	require.NoError(t, err)

	assert.Contains(t, out, "Question 1/9")
	assert.Contains(t, out, "(quit)")
}
