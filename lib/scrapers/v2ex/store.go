package v2ex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteNodes overwrites `path` with the node list as an indented JSON
// array of pairs. HTML escaping is disabled so titles keep characters
// like "&" and CJK text literally.
func WriteNodes(path string, nodes []Node) error {
	if nodes == nil {
		nodes = []Node{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nodes); err != nil {
		return fmt.Errorf("encode node list: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write node list: %w", err)
	}
	return nil
}

func ReadNodes(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read node list: %w", err)
	}

	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decode node list: %w", err)
	}
	return nodes, nil
}
