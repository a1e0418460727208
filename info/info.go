// Package info provides Info, an ordered and format-agnostic set of named values that
// serves as both the sink and the source of wrapper serialization.
//
// Values added through AddValue are kept as live Go values. Values read through
// UnmarshalYAML or UnmarshalJSON are kept raw and only decoded once Decode learns the
// target type, so no format ever has to guess at Go types.
package info

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/immutable_ive_go/delegate"
	"github.com/on-the-ground/immutable_ive_go/shared/helper"
)

var (
	_ delegate.Sink   = (*Info)(nil)
	_ delegate.Source = (*Info)(nil)
)

var (
	// ErrDuplicateName is returned when a name is added twice.
	ErrDuplicateName = errors.New("info: duplicate name")
	// ErrEmptyName is returned when a value is added without a name.
	ErrEmptyName = errors.New("info: empty name")
	// ErrTargetNotPointer is returned when Decode receives a non-pointer or nil target.
	ErrTargetNotPointer = errors.New("info: decode target must be a non-nil pointer")
	// ErrNotMapping is returned when the encoded form is not a mapping/object.
	ErrNotMapping = errors.New("info: encoded value is not a mapping")
)

// Info is an insertion-ordered collection of named values.
// It is not safe for concurrent mutation.
type Info struct {
	names  []string
	values map[string]any
}

// New returns an empty Info.
func New() *Info {
	return &Info{values: make(map[string]any)}
}

// AddValue records value under name.
func (in *Info) AddValue(name string, value any) error {
	if name == "" {
		return ErrEmptyName
	}
	if in.values == nil {
		in.values = make(map[string]any)
	}
	if _, ok := in.values[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	in.names = append(in.names, name)
	in.values[name] = value
	return nil
}

// Decode stores the value recorded under name into target.
func (in *Info) Decode(name string, target any) (bool, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, ErrTargetNotPointer
	}
	raw, ok := in.values[name]
	if !ok {
		return false, nil
	}
	switch raw := raw.(type) {
	case *yaml.Node:
		if err := raw.Decode(target); err != nil {
			return true, fmt.Errorf("info: decode %q: %w", name, err)
		}
	case json.RawMessage:
		if err := json.Unmarshal(raw, target); err != nil {
			return true, fmt.Errorf("info: decode %q: %w", name, err)
		}
	default:
		if err := helper.Assign(rv.Elem(), raw); err != nil {
			return true, fmt.Errorf("info: decode %q: %w", name, err)
		}
	}
	return true, nil
}

// Lookup returns the value recorded under name as stored: a live value, a *yaml.Node
// or a json.RawMessage.
func (in *Info) Lookup(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Names returns the recorded names in insertion order.
func (in *Info) Names() []string {
	out := make([]string, len(in.names))
	copy(out, in.names)
	return out
}

// Len returns the number of recorded names.
func (in *Info) Len() int {
	return len(in.names)
}

// MarshalYAML encodes the Info as a mapping in insertion order.
func (in *Info) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range in.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		var value *yaml.Node
		switch raw := in.values[name].(type) {
		case *yaml.Node:
			value = raw
		case json.RawMessage:
			var decoded any
			if err := json.Unmarshal(raw, &decoded); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
			value = &yaml.Node{}
			if err := value.Encode(decoded); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
		default:
			value = &yaml.Node{}
			if err := value.Encode(raw); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// UnmarshalYAML replaces the contents of the Info with the entries of a mapping node.
func (in *Info) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return ErrNotMapping
	}
	*in = *New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := in.AddValue(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON encodes the Info as an object in insertion order.
func (in *Info) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, name := range in.names {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		var value []byte
		switch raw := in.values[name].(type) {
		case json.RawMessage:
			value = raw
		case *yaml.Node:
			var decoded any
			if err := raw.Decode(&decoded); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
			if value, err = json.Marshal(decoded); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
		default:
			if value, err = json.Marshal(raw); err != nil {
				return nil, fmt.Errorf("info: encode %q: %w", name, err)
			}
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON replaces the contents of the Info with the members of a JSON object.
// Member order follows the input document. A JSON null leaves the Info unchanged.
func (in *Info) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotMapping
	}
	fresh := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := fresh.AddValue(name, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*in = *fresh
	return nil
}
