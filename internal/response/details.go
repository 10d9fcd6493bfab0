package response

import (
	"bytes"
	"net/http"

	"github.com/goccy/go-json"
)

// Entry is the wire projection of one notification.
type Entry struct {
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
}

// Extension is a named list emitted after the fixed members of Details.
// An Extension that is present always serializes, even with no items.
type Extension struct {
	Name  string
	Items []Entry
}

// Details is the body shape shared by success and problem responses.
//
// Members serialize in the order type, title, status, detail, then every
// extension in slice order. Type and Detail are omitted when unset.
type Details struct {
	Type       string
	Title      string
	Status     int
	Detail     *string
	Extensions []Extension
}

// Extension looks up an extension by name.
func (d Details) Extension(name string) (Extension, bool) {
	for _, e := range d.Extensions {
		if e.Name == name {
			return e, true
		}
	}
	return Extension{}, false
}

// ContentType is application/json for 2xx bodies and
// application/problem+json for everything else.
func (d Details) ContentType() string {
	if d.Status >= http.StatusOK && d.Status < http.StatusMultipleChoices {
		return "application/json"
	}
	return "application/problem+json"
}

func (d Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	member := func(name string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(val)
		return nil
	}

	if d.Type != "" {
		if err := member("type", d.Type); err != nil {
			return nil, err
		}
	}
	if err := member("title", d.Title); err != nil {
		return nil, err
	}
	if err := member("status", d.Status); err != nil {
		return nil, err
	}
	if d.Detail != nil {
		if err := member("detail", *d.Detail); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Extensions {
		items := e.Items
		if items == nil {
			items = []Entry{}
		}
		if err := member(e.Name, items); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
