// Package schema decodes the YAML API-surface description into typed,
// order-preserving records ready for the transformer (pkgs/ir) to consume.
package schema

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// DefaultClassName is used when a root schema omits $as.
const DefaultClassName = "XSClient"

// DefaultURLExpr is the expression a group or endpoint inherits when it
// omits $url: it reuses its parent's url verbatim.
const DefaultURLExpr = "${!super.url}"

// ChildKind distinguishes a nested group from a leaf endpoint.
type ChildKind int

const (
	ChildEndpoint ChildKind = iota
	ChildGroup
)

// Child is a tagged union over the two kinds of entries a group or root
// may contain.
type Child struct {
	Kind     ChildKind
	Group    *Group
	Endpoint *Endpoint
}

// ChildMap preserves the YAML document's key order.
type ChildMap = *orderedmap.OrderedMap[string, Child]

// ParamMap preserves $params/$data key order. The value is the raw type
// tag text (may be empty).
type ParamMap = *orderedmap.OrderedMap[string, string]

// Root is the top-level schema document.
type Root struct {
	URL       string
	ClassName string
	Children  ChildMap
}

// Group is a nested API set ("~"-prefixed key in the source document).
type Group struct {
	URL      string
	Children ChildMap
}

// Endpoint is a leaf API call.
type Endpoint struct {
	Method Method
	URL    string
	Params ParamMap
	Data   ParamMap
}

// LoadError wraps a failure to decode the schema document.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading schema %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Parse decodes a YAML document into a Root.
func Parse(data []byte) (*Root, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Root{URL: "", ClassName: DefaultClassName, Children: orderedmap.New[string, Child]()}, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema document root must be a mapping, got kind %d", mapping.Kind)
	}

	root := &Root{ClassName: DefaultClassName, Children: orderedmap.New[string, Child]()}
	for i := 0; i < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		val := mapping.Content[i+1]
		switch key {
		case "$url":
			root.URL = val.Value
		case "$as":
			root.ClassName = val.Value
		default:
			child, err := parseChildEntry(key, val)
			if err != nil {
				return nil, err
			}
			root.Children.Set(childName(key), child)
		}
	}
	return root, nil
}

func parseChildEntry(key string, val *yaml.Node) (Child, error) {
	if isGroupKey(key) {
		group, err := parseGroup(val)
		if err != nil {
			return Child{}, fmt.Errorf("group %q: %w", key, err)
		}
		return Child{Kind: ChildGroup, Group: group}, nil
	}
	endpoint, err := parseEndpoint(val)
	if err != nil {
		return Child{}, fmt.Errorf("endpoint %q: %w", key, err)
	}
	return Child{Kind: ChildEndpoint, Endpoint: endpoint}, nil
}

func isGroupKey(key string) bool {
	return len(key) > 0 && key[0] == '~'
}

func childName(key string) string {
	if isGroupKey(key) {
		return key[1:]
	}
	return key
}

func parseGroup(node *yaml.Node) (*Group, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("group must be a mapping, got kind %d", node.Kind)
	}
	group := &Group{URL: DefaultURLExpr, Children: orderedmap.New[string, Child]()}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "$url":
			group.URL = val.Value
		default:
			child, err := parseChildEntry(key, val)
			if err != nil {
				return nil, err
			}
			group.Children.Set(childName(key), child)
		}
	}
	return group, nil
}

func parseEndpoint(node *yaml.Node) (*Endpoint, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("endpoint must be a mapping, got kind %d", node.Kind)
	}
	endpoint := &Endpoint{Method: DefaultMethod, URL: DefaultURLExpr}
	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "$method":
			method, err := ParseMethod(val.Value)
			if err != nil {
				return nil, err
			}
			endpoint.Method = method
		case "$url":
			endpoint.URL = val.Value
		case "$params":
			params, err := parseParamMap(val)
			if err != nil {
				return nil, fmt.Errorf("$params: %w", err)
			}
			endpoint.Params = params
		case "$data":
			data, err := parseParamMap(val)
			if err != nil {
				return nil, fmt.Errorf("$data: %w", err)
			}
			endpoint.Data = data
		default:
			return nil, fmt.Errorf("unrecognized endpoint field %q", key)
		}
	}
	if endpoint.Params == nil {
		endpoint.Params = orderedmap.New[string, string]()
	}
	if endpoint.Data == nil {
		endpoint.Data = orderedmap.New[string, string]()
	}
	return endpoint, nil
}

func parseParamMap(node *yaml.Node) (ParamMap, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("must be a mapping, got kind %d", node.Kind)
	}
	m := orderedmap.New[string, string]()
	for i := 0; i < len(node.Content); i += 2 {
		m.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	return m, nil
}
