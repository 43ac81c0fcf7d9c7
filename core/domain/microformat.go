// ABOUTME: Microformats2 item model keyed by the informal h-*/p-*/u-*/dt-*/e-* vocabulary
// ABOUTME: Values are plain text, resolved URLs, or nested microformat items

package domain

import "encoding/json"

// MicroformatItem is one parsed microformats2 item.
type MicroformatItem struct {
	// Types holds the full root class tokens ("h-card"). An element whose
	// class list carries several h-* tokens produces one item with
	// several types.
	Types []string `json:"types"`

	// Properties maps prefix-stripped property names ("name", "url",
	// "published") to their values in document order.
	Properties map[string][]MicroformatValue `json:"properties"`

	// Children holds nested root items that carry no property class of
	// their own, in document order.
	Children []*MicroformatItem `json:"children,omitempty"`
}

// NewMicroformatItem creates an empty item with an initialized property map.
func NewMicroformatItem() *MicroformatItem {
	return &MicroformatItem{
		Types:      []string{},
		Properties: map[string][]MicroformatValue{},
	}
}

// AddProperty appends a value to the named property, preserving order.
func (i *MicroformatItem) AddProperty(name string, value MicroformatValue) {
	if i.Properties == nil {
		i.Properties = map[string][]MicroformatValue{}
	}
	i.Properties[name] = append(i.Properties[name], value)
}

// HasType reports whether the item carries the given root class token.
func (i *MicroformatItem) HasType(rootClass string) bool {
	for _, t := range i.Types {
		if t == rootClass {
			return true
		}
	}
	return false
}

// MicroformatValue is one microformat property value: trimmed text (p-*,
// dt-*, e-*), a resolved URL (u-*), or a nested item. Text and URL both
// serialize as plain strings; nested items serialize as objects.
type MicroformatValue struct {
	Text   string
	URL    string
	Nested *MicroformatItem
}

// MFText wraps plain text as a MicroformatValue.
func MFText(s string) MicroformatValue {
	return MicroformatValue{Text: s}
}

// MFURL wraps a resolved URL as a MicroformatValue.
func MFURL(u string) MicroformatValue {
	return MicroformatValue{URL: u}
}

// MFNested wraps a nested item as a MicroformatValue.
func MFNested(item *MicroformatItem) MicroformatValue {
	return MicroformatValue{Nested: item}
}

// String returns the scalar form of the value; nested items return "".
func (v MicroformatValue) String() string {
	if v.URL != "" {
		return v.URL
	}
	return v.Text
}

// MarshalJSON emits nested items as objects and scalar values as strings.
func (v MicroformatValue) MarshalJSON() ([]byte, error) {
	if v.Nested != nil {
		return json.Marshal(v.Nested)
	}
	if v.URL != "" {
		return json.Marshal(v.URL)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON string or an item object.
func (v *MicroformatValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		item := NewMicroformatItem()
		if err := json.Unmarshal(data, item); err != nil {
			return err
		}
		v.Nested = item
		return nil
	}
	return json.Unmarshal(data, &v.Text)
}
