package immutable

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/immutable_ive_go/info"
)

// MarshalYAML encodes the wrapper as the mapping of its serialized members.
func (w Immutable[T]) MarshalYAML() (any, error) {
	in := info.New()
	if err := w.Serialize(in); err != nil {
		return nil, err
	}
	return in.MarshalYAML()
}

// UnmarshalYAML replaces w with a wrapper deserialized from node.
// A wrapper that already has options keeps them.
func (w *Immutable[T]) UnmarshalYAML(node *yaml.Node) error {
	in := info.New()
	if err := in.UnmarshalYAML(node); err != nil {
		return err
	}
	return w.replaceFrom(in)
}

// MarshalJSON encodes the wrapper as the object of its serialized members.
func (w Immutable[T]) MarshalJSON() ([]byte, error) {
	in := info.New()
	if err := w.Serialize(in); err != nil {
		return nil, err
	}
	return in.MarshalJSON()
}

// UnmarshalJSON replaces w with a wrapper deserialized from data.
// A JSON null leaves w unchanged.
func (w *Immutable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	in := info.New()
	if err := in.UnmarshalJSON(data); err != nil {
		return err
	}
	return w.replaceFrom(in)
}

func (w *Immutable[T]) replaceFrom(in *info.Info) error {
	r, err := w.resolver()
	if err != nil {
		return err
	}
	next, err := r.populate(in)
	if err != nil {
		return err
	}
	*w = next
	return nil
}
