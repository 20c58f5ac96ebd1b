package v2ex

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fuzy112/v2ex-tui/lib/htmlutil"
	"github.com/fuzy112/v2ex-tui/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PlanesURL lists every node grouped by plane, which makes it the one
// page on the site that carries the complete node inventory.
const PlanesURL = "https://www.v2ex.com/planes"

const (
	nodeHrefPrefix  = "/go/"
	nodeMarkerClass = "item_node"
)

// Node is one category tag on the site: the short name from its
// /go/<name> url plus a human-readable title.
type Node struct {
	Name  string
	Title string
}

// nodes.json stores each node as a ["name", "title"] pair.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{n.Name, n.Title})
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	n.Name = pair[0]
	n.Title = pair[1]
	return nil
}

// ExtractNodes pulls every node out of a rendered planes page.
//
// Anchors carrying the exact `class="item_node"` marker are the real
// node links; when at least one is present only those are used. Pages
// without the marker (older markup) fall back to every /go/ anchor.
// The two sets are never merged, the marker has better precision and
// mixing in broad matches would reintroduce its false positives.
// Duplicate names keep their first occurrence, in document order.
func ExtractNodes(ctx context.Context, html string) ([]Node, error) {
	ctx, span := tracer.Start(ctx, "ExtractNodes")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var broad, strict []Node
	for _, a := range htmlutil.GetAnchors(ctx, doc.Find("a[href]")) {
		if !strings.HasPrefix(a.Href, nodeHrefPrefix) {
			continue
		}
		name := strings.TrimPrefix(a.Href, nodeHrefPrefix)
		if name == "" {
			continue
		}

		node := Node{
			Name:  name,
			Title: textutil.CleanLabel(a.Text),
		}
		broad = append(broad, node)
		if a.Class == nodeMarkerClass {
			strict = append(strict, node)
		}
	}

	matches := broad
	if len(strict) > 0 {
		matches = strict
	}

	nodes := dedupeNodes(matches)
	span.SetAttributes(
		attribute.Int("broad", len(broad)),
		attribute.Int("strict", len(strict)),
		attribute.Int("unique", len(nodes)),
	)
	return nodes, nil
}

func dedupeNodes(nodes []Node) []Node {
	seen := make(map[string]bool, len(nodes))
	unique := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		unique = append(unique, n)
	}
	return unique
}

// Summarize renders the first `count` nodes the way the admin script
// has always printed its favorites:
//
//	1. python               - Python
func Summarize(nodes []Node, count int) string {
	if count > len(nodes) {
		count = len(nodes)
	}
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, fmt.Sprintf("%d. %-20s - %s", i+1, nodes[i].Name, nodes[i].Title))
	}
	return strings.Join(lines, "\n")
}
