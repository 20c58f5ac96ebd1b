package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<a href="/go/python"><span>Py</span>thon</a>`,
	))
	require.NoError(t, err)

	sel := doc.Find("a")
	require.Len(t, sel.Nodes, 1)
	require.Equal(t, "Python", GetText(sel.Nodes[0]))
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<a href="/go/python" class="item_node">Python</a>` +
			`<a href="/about">About</a>` +
			`<a name="no-href">skipped</a>`,
	))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Text: "Python", Href: "/go/python", Class: "item_node"},
		{Text: "About", Href: "/about"},
	}, anchors)
}
