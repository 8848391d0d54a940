package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDocument is matched by every DocumentError.
var ErrMalformedDocument = errors.New("malformed document")

// DocumentError reports why a serialized store was rejected.
type DocumentError struct {
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return "malformed document: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed document: " + e.Reason
}

func (e *DocumentError) Unwrap() error { return e.Err }

func (e *DocumentError) Is(target error) bool { return target == ErrMalformedDocument }

// UnmarshalJSON decodes an item leniently: a price that is not a number
// within range counts as zero instead of rejecting the document.
func (it *Item) UnmarshalJSON(b []byte) error {
	type item Item
	var raw struct {
		item
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*it = Item(raw.item)
	it.Price = Zero
	if len(raw.Price) > 0 {
		var p Amount
		if err := p.UnmarshalJSON(raw.Price); err == nil {
			it.Price = p
		}
	}
	return nil
}

// DecodeStore parses a serialized store.
//
// The document must be a JSON object with a "months" object field whose
// values are well-formed months. Other top-level fields are ignored.
func DecodeStore(data []byte) (Store, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return Store{}, &DocumentError{Reason: "not a JSON object", Err: err}
	}
	if top == nil {
		return Store{}, &DocumentError{Reason: "not a JSON object"}
	}
	raw, ok := top["months"]
	if !ok {
		return Store{}, &DocumentError{Reason: `missing "months" field`}
	}
	if t := bytes.TrimSpace(raw); len(t) == 0 || t[0] != '{' {
		return Store{}, &DocumentError{Reason: `"months" is not an object`}
	}

	var months map[MonthKey]MonthData
	if err := json.Unmarshal(raw, &months); err != nil {
		return Store{}, &DocumentError{Reason: "invalid month data", Err: err}
	}
	for k, m := range months {
		if m.Items == nil {
			m.Items = []Item{}
			months[k] = m
		}
	}
	s := Store{Months: months}
	if err := s.Validate(); err != nil {
		return Store{}, &DocumentError{Reason: "invalid month data", Err: err}
	}
	return s, nil
}

// EncodeStore serializes s, indented when pretty is set.
func EncodeStore(s Store, pretty bool) ([]byte, error) {
	doc := Store{Months: make(map[MonthKey]MonthData, len(s.Months))}
	for k, m := range s.Months {
		if m.Items == nil {
			m.Items = []Item{}
		}
		doc.Months[k] = m
	}
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(doc, "", "  ")
	} else {
		b, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return b, nil
}
