package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	require.NoError(t, Init(""))

	assert.Len(t, Master(), 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, IDs())

	name, ok := Name(1)
	assert.True(t, ok)
	assert.Equal(t, "Urgent response required", name)

	_, ok = Name(11)
	assert.False(t, ok)
}

func TestInit_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	payload := "1:\n  name: First\n2:\n  name: Second\n"
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Init("") })

	assert.Len(t, Master(), 2)
	name, ok := Name(2)
	assert.True(t, ok)
	assert.Equal(t, "Second", name)
}

func TestInit_MissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
