package main

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"
)

type entry struct {
	Key   string
	Value any
}

// ordered is a mapping that keeps its key order in both YAML and JSON
type ordered []entry

// naturalMap orders m by port-aware natural key order (1/2 before 1/10)
func naturalMap[V any](m map[string]V) ordered {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natural.Less(keys[i], keys[j]) })
	out := make(ordered, 0, len(keys))
	for _, k := range keys {
		out = append(out, entry{Key: k, Value: m[k]})
	}
	return out
}

// orderedMap emits m in the order of keys, skipping repeats and missing keys
func orderedMap(keys []string, m map[string]string) ordered {
	seen := make(map[string]bool, len(keys))
	out := make(ordered, 0, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, entry{Key: k, Value: v})
	}
	return out
}

func (o ordered) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range o {
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

func (o ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// render writes v as indented JSON or as YAML
func render(w io.Writer, v any, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
