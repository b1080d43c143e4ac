package annotation

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
)

// Codec is the external serializer collaborator: it turns a value into
// markup tagged with a type-identifying element name and back. The
// default implementation uses encoding/xml; tests substitute their own.
type Codec interface {
	// Name returns the element tag identifying the value's type.
	Name(v any) (string, error)

	// Marshal serializes the value into a single element named Name(v).
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes a single element into the value.
	Unmarshal(data []byte, v any) error
}

// XMLCodec is the default Codec, backed by encoding/xml. The element
// tag comes from the struct's XMLName field tag when present, otherwise
// from the Go type name — the same rule encoding/xml applies when
// marshalling, so the stored tag and the lookup tag cannot diverge.
type XMLCodec struct{}

// Default is the codec used by SetValue and Value.
var Default Codec = XMLCodec{}

// Name implements Codec.
func (XMLCodec) Name(v any) (string, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", fmt.Errorf("annotation value must be a struct, got %T", v)
	}
	if f, ok := t.FieldByName("XMLName"); ok {
		tag := f.Tag.Get("xml")
		if name := strings.Split(tag, ",")[0]; name != "" {
			// Namespaced tags are "url local"; the tag is the local part.
			parts := strings.Fields(name)
			return parts[len(parts)-1], nil
		}
	}
	if t.Name() == "" {
		return "", fmt.Errorf("annotation value type must be named, got %s", t)
	}
	return t.Name(), nil
}

// Marshal implements Codec.
func (XMLCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal implements Codec.
func (XMLCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
