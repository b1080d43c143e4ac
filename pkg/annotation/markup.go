package annotation

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// ContainerTag is the local name of the reserved container element.
const ContainerTag = "annotation"

// Fragment is one top-level child of an annotation container: its
// resolved name plus its exact source bytes. Keeping the raw text means
// foreign content survives a merge byte-for-byte, namespaces included.
type Fragment struct {
	Name xml.Name
	Raw  string
}

// Fragments splits markup into its top-level element fragments.
// Character data between elements is ignored; anything that does not
// tokenize is an error.
func Fragments(markup string) ([]Fragment, error) {
	dec := xml.NewDecoder(strings.NewReader(markup))
	var frags []Fragment

	for {
		// Offset of the upcoming token, before it is consumed.
		start := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			return frags, nil
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		// The '<' may sit after leading whitespace the decoder consumed
		// together with the token; locate it exactly.
		if i := strings.IndexByte(markup[start:], '<'); i >= 0 {
			start += int64(i)
		}
		if err := dec.Skip(); err != nil {
			return nil, err
		}
		end := dec.InputOffset()
		frags = append(frags, Fragment{Name: se.Name, Raw: markup[start:end]})
	}
}

func xmlName(local string) xml.Name {
	return xml.Name{Local: local}
}

// innerXML returns the raw content between an element's start and end
// tags.
func innerXML(raw string) (string, error) {
	var el struct {
		XMLName xml.Name
		Inner   string `xml:",innerxml"`
	}
	if err := xml.Unmarshal([]byte(raw), &el); err != nil {
		return "", err
	}
	return el.Inner, nil
}

// buildContainer assembles a container from child fragments.
func buildContainer(frags []Fragment) string {
	var b strings.Builder
	b.WriteString("<" + ContainerTag + ">")
	for _, f := range frags {
		b.WriteString(f.Raw)
	}
	b.WriteString("</" + ContainerTag + ">")
	return b.String()
}

// normalizeInput validates markup and returns it as container child
// fragments. Input already wrapped in the container element is
// unwrapped first.
func normalizeInput(markup string) ([]Fragment, error) {
	frags, err := Fragments(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	if len(frags) == 0 {
		return nil, fmt.Errorf("%w: no element content", ErrMalformedMarkup)
	}
	if len(frags) == 1 && frags[0].Name.Local == ContainerTag {
		inner, err := innerXML(frags[0].Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}
		inner = strings.TrimSpace(inner)
		frags, err = Fragments(inner)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
		}
	}
	return frags, nil
}
