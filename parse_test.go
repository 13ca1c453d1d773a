package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWordListsYAML(t *testing.T) {
	path := writeTempFile(t, "words.yaml", `
horizontal:
  - cat
  - stream
vertical:
  - car
`)
	lists, err := LoadWordListsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"CAT", "STREAM"}, lists.Horizontal)
	require.Equal(t, []string{"CAR"}, lists.Vertical)
}

func TestLoadWordListsJSON(t *testing.T) {
	path := writeTempFile(t, "words.json", `{"horizontal":["cat"],"vertical":["car","master"]}`)
	lists, err := LoadWordListsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"CAT"}, lists.Horizontal)
	require.Equal(t, []string{"CAR", "MASTER"}, lists.Vertical)
}

func TestLoadWordListsNormalization(t *testing.T) {
	path := writeTempFile(t, "words.yaml", `
horizontal:
  - "  cat  "
  - ""
vertical: []
`)
	lists, err := LoadWordListsFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"CAT"}, lists.Horizontal)
	require.Empty(t, lists.Vertical)
}

func TestLoadWordListsEmptyInput(t *testing.T) {
	path := writeTempFile(t, "words.yaml", "horizontal: []\nvertical: []\n")
	_, err := LoadWordListsFile(path)
	require.ErrorIs(t, err, errNoWords)
}

func TestLoadWordListsInvalidJSON(t *testing.T) {
	path := writeTempFile(t, "words.json", `{"horizontal":[`)
	_, err := LoadWordListsFile(path)
	require.Error(t, err)
}

func TestLoadWordListsMissingFile(t *testing.T) {
	_, err := LoadWordListsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDirectionJSONRoundTrip(t *testing.T) {
	for _, d := range []Direction{Horizontal, Vertical} {
		data, err := d.MarshalJSON()
		require.NoError(t, err)
		var back Direction
		require.NoError(t, back.UnmarshalJSON(data))
		require.Equal(t, d, back)
	}
	var d Direction
	require.Error(t, d.UnmarshalJSON([]byte(`"diagonal"`)))
}
