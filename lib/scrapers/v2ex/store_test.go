package v2ex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	nodes := []Node{
		{Name: "python", Title: "Python"},
		{Name: "qna", Title: "问与答"},
		{Name: "share", Title: "分享发现 & 创造"},
	}

	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, WriteNodes(path, nodes))

	back, err := ReadNodes(path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(nodes, back))
}

func TestWriteNodesFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, WriteNodes(path, []Node{{Name: "share", Title: "分享发现 & 创造"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// non-ASCII and "&" must survive literally
	require.Contains(t, string(data), "分享发现 & 创造")
	require.Contains(t, string(data), "\n  ")
}

func TestWriteNodesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, WriteNodes(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(data)))

	back, err := ReadNodes(path)
	require.NoError(t, err)
	require.Empty(t, back)
}

func TestWriteNodesOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.json")
	require.NoError(t, WriteNodes(path, []Node{{Name: "old", Title: "Old"}}))
	require.NoError(t, WriteNodes(path, []Node{{Name: "new", Title: "New"}}))

	back, err := ReadNodes(path)
	require.NoError(t, err)
	require.Equal(t, []Node{{Name: "new", Title: "New"}}, back)
}

func TestWriteNodesBadPath(t *testing.T) {
	err := WriteNodes(filepath.Join(t.TempDir(), "missing", "nodes.json"), []Node{})
	require.Error(t, err)
}
