package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// MatchedUser is the other side of a match. Until the reveal gate opens the
// client must not display Name, Bio or Photo (see Match.Display).
type MatchedUser struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio,omitempty"`
	Photo     string   `json:"photo,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Match is a server-assigned pairing. IsPhotoRevealed is computed by the
// server; the client only obeys it.
//
// A Match decoded from JSON remembers every top-level field of the payload,
// including the ones not modelled here, so that Merge can keep fields the
// server does not echo. Match values are treated as immutable: derive new
// ones with Merge or WithField instead of assigning to a decoded value.
type Match struct {
	ID              string       `json:"id"`
	MatchedUser     *MatchedUser `json:"matchedUser,omitempty"`
	IsPhotoRevealed bool         `json:"isPhotoRevealed"`
	ExpiresAt       *time.Time   `json:"expiresAt,omitempty"`

	fields map[string]json.RawMessage
}

type matchFields Match

func (m *Match) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var typed matchFields
	if err := json.Unmarshal(b, &typed); err != nil {
		return err
	}
	*m = Match(typed)
	m.fields = fields
	return nil
}

func (m Match) MarshalJSON() ([]byte, error) {
	if m.fields != nil {
		return json.Marshal(m.fields)
	}
	return json.Marshal(matchFields(m))
}

// document returns the top-level fields of m keyed by JSON name.
func (m *Match) document() (map[string]json.RawMessage, error) {
	if m.fields != nil {
		return cloneFields(m.fields), nil
	}
	b, err := json.Marshal(matchFields(*m))
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDocument(doc map[string]json.RawMessage) (*Match, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Match
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Field returns the raw JSON of a top-level field, modelled or not.
func (m *Match) Field(name string) (json.RawMessage, bool) {
	doc, err := m.document()
	if err != nil {
		return nil, false
	}
	v, ok := doc[name]
	return v, ok
}

// WithField returns a copy of m with the top-level field name set to value.
func (m *Match) WithField(name string, value any) (*Match, error) {
	doc, err := m.document()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode match field %q: %w", name, err)
	}
	doc[name] = raw
	return fromDocument(doc)
}

// Merge returns the shallow merge of patch over m: each top-level field
// present in patch replaces the one in m, every other field of m survives.
// A nil m yields a copy of patch, a nil patch a copy of m.
func (m *Match) Merge(patch *Match) (*Match, error) {
	switch {
	case patch == nil:
		return m.Clone(), nil
	case m == nil:
		return patch.Clone(), nil
	}

	base, err := m.document()
	if err != nil {
		return nil, fmt.Errorf("merge match: %w", err)
	}
	over, err := patch.document()
	if err != nil {
		return nil, fmt.Errorf("merge match: %w", err)
	}
	for k, v := range over {
		base[k] = v
	}
	merged, err := fromDocument(base)
	if err != nil {
		return nil, fmt.Errorf("merge match: %w", err)
	}
	return merged, nil
}

// Clone returns a deep copy of m. A nil receiver yields nil.
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	if m.MatchedUser != nil {
		u := *m.MatchedUser
		u.Interests = slices.Clone(m.MatchedUser.Interests)
		c.MatchedUser = &u
	}
	if m.ExpiresAt != nil {
		t := *m.ExpiresAt
		c.ExpiresAt = &t
	}
	if m.fields != nil {
		c.fields = cloneFields(m.fields)
	}
	return &c
}

func cloneFields(in map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(in))
	for k, v := range in {
		out[k] = bytes.Clone(v)
	}
	return out
}
