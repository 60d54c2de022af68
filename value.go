package plexnet

import (
	"net/url"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Value is an attribute value as it came over the wire, always text.
// It remembers the server it was fetched from so that paths can be
// resolved to URLs later.
type Value struct {
	raw    string
	server Transport
	na     bool
}

// NewValue returns an available value resolved against server, which may be nil.
func NewValue(raw string, server Transport) Value {
	return Value{raw: raw, server: server}
}

// unavailable returns the placeholder for an attribute the server never sent.
func unavailable(server Transport) Value {
	return Value{server: server, na: true}
}

func (v Value) String() string {
	return v.raw
}

// Available reports whether the attribute actually exists.
func (v Value) Available() bool {
	return !v.na
}

// Or returns the raw text, or def if the attribute doesn't exist.
func (v Value) Or(def string) string {
	if v.na {
		return def
	}
	return v.raw
}

func (v Value) Bool() bool {
	return v.raw == "1"
}

// Int returns def for an empty value. Anything else must be an integer.
func (v Value) Int(def int) (int, error) {
	if v.raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v.raw)
	if err != nil {
		return 0, &ParseError{Raw: v.raw, As: "int", Err: err}
	}
	return n, nil
}

// Float returns def for an empty value. Anything else must be a number.
func (v Value) Float(def float64) (float64, error) {
	if v.raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, &ParseError{Raw: v.raw, As: "float", Err: err}
	}
	return f, nil
}

// Time interprets digits as Unix seconds and anything else as YYYY-MM-DD.
func (v Value) Time() (time.Time, error) {
	if isDigits(v.raw) {
		n, err := strconv.ParseInt(v.raw, 10, 64)
		if err != nil {
			return time.Time{}, &ParseError{Raw: v.raw, As: "datetime", Err: err}
		}
		return time.Unix(n, 0), nil
	}

	t, err := time.ParseInLocation(dateLayout, v.raw, time.Local)
	if err != nil {
		return time.Time{}, &ParseError{Raw: v.raw, As: "datetime", Err: err}
	}
	return t, nil
}

// FormatTime is Time followed by Format. An empty layout means RFC 3339.
func (v Value) FormatTime(layout string) (string, error) {
	t, err := v.Time()
	if err != nil {
		return "", err
	}
	if layout == "" {
		layout = time.RFC3339
	}
	return t.Format(layout), nil
}

// URL resolves the value as a path on the server it came from.
func (v Value) URL() (string, error) {
	if v.server == nil {
		return "", ErrNoServer
	}
	return v.server.URL(v.raw), nil
}

// TranscodedImageURL asks the server for a resized rendition of the image at this path.
func (v Value) TranscodedImageURL(width, height int, extras url.Values) (string, error) {
	if v.server == nil {
		return "", ErrNoServer
	}
	return v.server.ImageTranscodeURL(v.raw, width, height, extras), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
