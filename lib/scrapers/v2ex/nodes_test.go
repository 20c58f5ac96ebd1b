package v2ex

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fuzy112/v2ex-tui/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestExtractNodes(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:v2ex")
	defer cleanup()

	testCases := []struct {
		name     string
		html     string
		expected []Node
	}{
		{
			name:     "no matching anchors",
			html:     `<html><body><a href="/about">About</a><p>nothing here</p></body></html>`,
			expected: []Node{},
		},
		{
			name: "strict matches win over broad ones",
			html: `<a href="/go/python" class="item_node">Python</a>` +
				`<a href="/go/python" class="item_node">Python</a>` +
				`<a href="/go/golang">Go</a>`,
			expected: []Node{{Name: "python", Title: "Python"}},
		},
		{
			name: "broad fallback without marker class",
			html: `<a href="/go/python">Python</a><a href="/go/golang">Go</a>`,
			expected: []Node{
				{Name: "python", Title: "Python"},
				{Name: "golang", Title: "Go"},
			},
		},
		{
			name: "duplicates keep the first occurrence",
			html: `<a href="/go/a" class="item_node">First</a>` +
				`<a href="/go/b" class="item_node">Second</a>` +
				`<a href="/go/a" class="item_node">Third</a>`,
			expected: []Node{
				{Name: "a", Title: "First"},
				{Name: "b", Title: "Second"},
			},
		},
		{
			name:     "labels are cleaned up",
			html:     "<a href=\"/go/qna\" class=\"item_node\">  问与答 \n\t 讨论  </a>",
			expected: []Node{{Name: "qna", Title: "问与答 讨论"}},
		},
		{
			name: "marker class must match exactly",
			html: `<a href="/go/python" class="item_node extra">Python</a>` +
				`<a href="/go/golang">Go</a>`,
			expected: []Node{
				{Name: "python", Title: "Python"},
				{Name: "golang", Title: "Go"},
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			nodes, err := ExtractNodes(context.Background(), test.html)
			require.NoError(t, err)
			require.NotNil(t, nodes)
			require.Equal(t, test.expected, nodes)
		})
	}
}

func TestSummarize(t *testing.T) {
	var nodes []Node
	for i := 0; i < 20; i++ {
		nodes = append(nodes, Node{
			Name:  fmt.Sprintf("node%d", i),
			Title: fmt.Sprintf("Node %d", i),
		})
	}

	out := Summarize(nodes, 9)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	for i, line := range lines {
		require.True(t, strings.HasPrefix(line, fmt.Sprintf("%d. ", i+1)), line)
		require.Contains(t, line, fmt.Sprintf("node%d", i))
		require.Contains(t, line, fmt.Sprintf("- Node %d", i))
	}
}

func TestSummarizeShortList(t *testing.T) {
	nodes := []Node{
		{Name: "python", Title: "Python"},
		{Name: "golang", Title: "Go"},
	}

	out := Summarize(nodes, 9)
	require.Equal(t,
		"1. python               - Python\n"+
			"2. golang               - Go",
		out)
}
