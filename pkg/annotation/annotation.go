package annotation

import (
	"errors"
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// Annotation errors.
var (
	// ErrMalformedMarkup marks input that does not parse as markup.
	ErrMalformedMarkup = errors.New("malformed annotation markup")

	// ErrAnnotationNotFound marks a typed read with no matching tagged
	// element on the node.
	ErrAnnotationNotFound = errors.New("annotation not found")

	// ErrSchemaMismatch marks a tagged element that exists but does not
	// decode into the requested type.
	ErrSchemaMismatch = errors.New("annotation schema mismatch")
)

// SetRaw parses text and attaches it as the node's annotation
// container, wrapping it in <annotation> unless it is already wrapped.
// The previous container, if any, is replaced whole. On a parse error
// the node is left unchanged.
func SetRaw(h *borrow.Handle[core.SBase], text string) error {
	frags, err := normalizeInput(text)
	if err != nil {
		return err
	}
	container := buildContainer(frags)
	return h.Write(func(n *core.SBase) error {
		n.SetAnnotationString(container)
		return nil
	})
}

// Raw returns the node's annotation container markup, empty if no
// annotation is present.
func Raw(h *borrow.Handle[core.SBase]) (string, error) {
	var raw string
	err := h.Read(func(n *core.SBase) error {
		raw = n.AnnotationString()
		return nil
	})
	return raw, err
}

// SetValue serializes v with the default codec and merges it into the
// node's annotation container.
func SetValue(h *borrow.Handle[core.SBase], v any) error {
	return SetValueWith(h, Default, v)
}

// SetValueWith serializes v into a type-tagged element and merges it
// into the container: the child with the matching tag is replaced,
// every other child is preserved byte-for-byte. The container is
// created if absent.
func SetValueWith(h *borrow.Handle[core.SBase], c Codec, v any) error {
	name, err := c.Name(v)
	if err != nil {
		return fmt.Errorf("resolving annotation tag: %w", err)
	}
	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing annotation <%s>: %w", name, err)
	}

	return h.Write(func(n *core.SBase) error {
		var frags []Fragment
		if n.IsSetAnnotation() {
			inner, err := innerXML(n.AnnotationString())
			if err != nil {
				return fmt.Errorf("%w: existing container: %v", ErrMalformedMarkup, err)
			}
			frags, err = Fragments(inner)
			if err != nil {
				return fmt.Errorf("%w: existing container: %v", ErrMalformedMarkup, err)
			}
		}

		next := Fragment{Name: xmlName(name), Raw: string(data)}
		replaced := false
		for i, f := range frags {
			if f.Name.Local == name {
				frags[i] = next
				replaced = true
				break
			}
		}
		if !replaced {
			frags = append(frags, next)
		}

		n.SetAnnotationString(buildContainer(frags))
		return nil
	})
}

// Value locates the tagged element for T in the node's annotation
// container and decodes it with the default codec.
func Value[T any](h *borrow.Handle[core.SBase]) (T, error) {
	return ValueWith[T](h, Default)
}

// ValueWith locates the tagged element for T and decodes it with the
// given codec. A missing container or tag yields ErrAnnotationNotFound;
// a tag that does not decode yields ErrSchemaMismatch.
func ValueWith[T any](h *borrow.Handle[core.SBase], c Codec) (T, error) {
	var out T

	name, err := c.Name(&out)
	if err != nil {
		return out, fmt.Errorf("resolving annotation tag: %w", err)
	}

	var raw string
	if err := h.Read(func(n *core.SBase) error {
		raw = n.AnnotationString()
		return nil
	}); err != nil {
		return out, err
	}
	if raw == "" {
		return out, fmt.Errorf("%w: node has no annotation", ErrAnnotationNotFound)
	}

	inner, err := innerXML(raw)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	frags, err := Fragments(inner)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}

	for _, f := range frags {
		if f.Name.Local != name {
			continue
		}
		if err := c.Unmarshal([]byte(f.Raw), &out); err != nil {
			return out, fmt.Errorf("%w: decoding <%s>: %v", ErrSchemaMismatch, name, err)
		}
		return out, nil
	}
	return out, fmt.Errorf("%w: no <%s> element in container", ErrAnnotationNotFound, name)
}
