package plexnet

import (
	"encoding/xml"
	"errors"
	"io"
)

// Element is a parsed XML element. Attribute values are kept as text.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// Find returns the first direct child with the tag, or nil.
func (e *Element) Find(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	return len(e.Children)
}

// ParseElement reads a whole document and returns its root element.
func ParseElement(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := t.(type) {
		case xml.StartElement:
			e := Element{
				Tag:   t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				e.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, &e)
			} else if root == nil {
				root = &e
			}
			stack = append(stack, &e)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}
