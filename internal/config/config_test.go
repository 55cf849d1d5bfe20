package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiseven/jsonrepair-go/internal/testutil"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "job.yaml", "inputs:\n  - \"*.json\"\n")

	cfg, errs, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, ".", cfg.OutputDir)
	require.NotNil(t, cfg.Indent)
	assert.Equal(t, 2, *cfg.Indent)
}

func TestLoadRejectsEmptyInputs(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "job.yaml", "inputs: []\n")

	_, errs, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, errs)
}

func TestExtendsChainMerges(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "base.yaml", "inputs:\n  - \"base/*.json\"\noutput_dir: /tmp/base\nindent: 4\n")
	path := testutil.WriteFile(t, dir, "job.yaml", "extends: base.yaml\ninputs:\n  - \"job/*.json\"\n")

	cfg, errs, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"job/*.json"}, cfg.Inputs)
	assert.Equal(t, "/tmp/base", cfg.OutputDir, "unset fields inherit from the base")
	require.NotNil(t, cfg.Indent)
	assert.Equal(t, 4, *cfg.Indent)
}

func TestExtendsChainDetectsDirectCycle(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yaml", "extends: b.yaml\ninputs: [\"*.json\"]\n")
	testutil.WriteFile(t, dir, "b.yaml", "extends: a.yaml\ninputs: [\"*.json\"]\n")

	_, _, err := Load(a)
	require.Error(t, err)
	var cycleErr *CycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestExtendsChainDetectsSelfCycle(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.yaml", "extends: a.yaml\ninputs: [\"*.json\"]\n")

	_, _, err := Load(a)
	require.Error(t, err)
	var cycleErr *CycleError
	assert.ErrorAs(t, err, &cycleErr)
}
