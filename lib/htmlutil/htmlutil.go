package htmlutil

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("v2ex.lib.htmlutil")

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// Anchor is a flattened <a> element. Class holds the raw class
// attribute so callers can match on exact marker classes.
type Anchor struct {
	Text  string
	Href  string
	Class string
}

func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	ctx, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		class := ""
		for _, a := range n.Attr {
			switch a.Key {
			case "href":
				href = a.Val
			case "class":
				class = a.Val
			}
		}
		if href == "" {
			continue
		}

		text := GetText(n)
		anchors = append(anchors, Anchor{
			Text:  text,
			Href:  href,
			Class: class,
		})
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("text", text),
			attribute.String("href", href),
		))
	}

	return anchors
}
