// ABOUTME: Structured item model shared by the Microdata and RDFa extractors
// ABOUTME: Represents items as an owned forest with ordered property values

package domain

import (
	"encoding/json"
	"fmt"
)

// StructuredItem is one typed item extracted from Microdata or RDFa markup.
// Items form a forest: a nested item is owned by exactly one property slot
// of its parent and is never shared between parents.
type StructuredItem struct {
	// Types holds the item's type identifiers. Always a list, even for a
	// single type, so cardinality survives serialization.
	Types []string `json:"types"`

	// ID is the item's subject identifier (itemid / about / resource),
	// resolved against the document base when possible.
	ID string `json:"id,omitempty"`

	// Properties maps a property name to its values in document order.
	Properties map[string][]PropertyValue `json:"properties"`
}

// NewStructuredItem creates an empty item with an initialized property map.
func NewStructuredItem() *StructuredItem {
	return &StructuredItem{
		Types:      []string{},
		Properties: map[string][]PropertyValue{},
	}
}

// AddProperty appends a value to the named property, preserving order.
func (i *StructuredItem) AddProperty(name string, value PropertyValue) {
	if i.Properties == nil {
		i.Properties = map[string][]PropertyValue{}
	}
	i.Properties[name] = append(i.Properties[name], value)
}

// PropertyValue is either a text value or a nested StructuredItem.
// It serializes as a plain JSON string or a JSON object so the output
// stays representable in any consumer without internal references.
type PropertyValue struct {
	Text string
	Item *StructuredItem
}

// TextValue wraps a string as a PropertyValue.
func TextValue(s string) PropertyValue {
	return PropertyValue{Text: s}
}

// ItemValue wraps a nested item as a PropertyValue.
func ItemValue(item *StructuredItem) PropertyValue {
	return PropertyValue{Item: item}
}

// IsItem reports whether the value holds a nested item.
func (v PropertyValue) IsItem() bool {
	return v.Item != nil
}

// MarshalJSON emits nested items as objects and everything else as strings.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	if v.Item != nil {
		return json.Marshal(v.Item)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON string or an item object.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		item := NewStructuredItem()
		if err := json.Unmarshal(data, item); err != nil {
			return err
		}
		v.Item = item
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("property value must be a string or an object: %w", err)
	}
	v.Text = s
	return nil
}
