package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// ProductID is an opaque product identifier.
// Catalogs may send it as a JSON string or a number. A fresh ID encodes
// as a number when it is an integer literal and as a string otherwise;
// decoded line items keep whatever form they arrived in.
type ProductID string

// String returns the raw identifier
func (id ProductID) String() string { return string(id) }

// UnmarshalJSON accepts both quoted and numeric identifiers
func (id *ProductID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

// MarshalJSON writes integer-looking IDs as JSON numbers
func (id ProductID) MarshalJSON() ([]byte, error) {
	if isIntegerLiteral(string(id)) {
		return []byte(id), nil
	}
	return encodeJSON(string(id))
}

func isIntegerLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Product is a catalog record as shown on cards and in the product modal
type Product struct {
	ID          ProductID
	Name        string
	Price       float64 // Current unit price
	OldPrice    float64 // Price before discount (0 = none)
	Image       string  // Image URL
	Tag         string  // Category label, e.g. "Vestidos"
	IsNew       bool
	Discount    int // Percent off (0 = none)
	Description string
	Sizes       []string
	Colors      []string
}

// HasVariants returns true if the product offers a size or color choice
func (p Product) HasVariants() bool {
	return len(p.Sizes) > 0 || len(p.Colors) > 0
}

// LineItem is one product entry in the cart.
// lineItemJSON defines the persisted layout.
type LineItem struct {
	ID            ProductID
	Name          string
	Price         float64
	Image         string
	Quantity      int
	SelectedSize  string
	SelectedColor string

	// wire holds tokens from decoded data that the default encoding would
	// not reproduce: an id in its original form, explicitly empty variant
	// fields and keys this type does not model.
	wire map[string]json.RawMessage
}

type lineItemJSON struct {
	ID            ProductID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Image         string    `json:"image"`
	Quantity      int       `json:"quantity"`
	SelectedSize  string    `json:"selectedSize,omitempty"`
	SelectedColor string    `json:"selectedColor,omitempty"`
}

var lineItemKeys = map[string]bool{
	"id": true, "name": true, "price": true, "image": true,
	"quantity": true, "selectedSize": true, "selectedColor": true,
}

// UnmarshalJSON decodes a persisted line item, remembering what a plain
// re-encode would lose
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return nil
	}

	var v lineItemJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*li = LineItem{
		ID:            v.ID,
		Name:          v.Name,
		Price:         v.Price,
		Image:         v.Image,
		Quantity:      v.Quantity,
		SelectedSize:  v.SelectedSize,
		SelectedColor: v.SelectedColor,
	}

	wire := make(map[string]json.RawMessage)
	for k, raw := range fields {
		if !lineItemKeys[k] {
			wire[k] = raw
		}
	}
	if raw, ok := fields["id"]; ok {
		if enc, err := encodeJSON(v.ID); err != nil || !bytes.Equal(enc, raw) {
			wire["id"] = raw
		}
	}
	if raw, ok := fields["selectedSize"]; ok && v.SelectedSize == "" {
		wire["selectedSize"] = raw
	}
	if raw, ok := fields["selectedColor"]; ok && v.SelectedColor == "" {
		wire["selectedColor"] = raw
	}
	if len(wire) > 0 {
		li.wire = wire
	}
	return nil
}

// MarshalJSON writes the persisted layout followed by any keys carried
// over from decoded data
func (li LineItem) MarshalJSON() ([]byte, error) {
	base, err := encodeJSON(lineItemJSON{
		ID:            li.ID,
		Name:          li.Name,
		Price:         li.Price,
		Image:         li.Image,
		Quantity:      li.Quantity,
		SelectedSize:  li.SelectedSize,
		SelectedColor: li.SelectedColor,
	})
	if err != nil || len(li.wire) == 0 {
		return base, err
	}

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	keys := make([]string, 0, len(li.wire))
	for k := range li.wire {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		raw := li.wire[k]
		switch k {
		case "id":
			// Spliced over the default token below
			continue
		case "selectedSize", "selectedColor":
			if li.variantSet(k) {
				continue
			}
		}
		name, err := encodeJSON(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(raw)
	}
	buf.WriteByte('}')

	out := buf.Bytes()
	if raw, ok := li.wire["id"]; ok {
		id, err := encodeJSON(li.ID)
		if err != nil {
			return nil, err
		}
		prefix := append([]byte(`{"id":`), id...)
		out = append(append([]byte(`{"id":`), raw...), out[len(prefix):]...)
	}
	return out, nil
}

// variantSet reports whether the named variant field now has a value,
// which the default encoding already writes
func (li LineItem) variantSet(key string) bool {
	if key == "selectedSize" {
		return li.SelectedSize != ""
	}
	return li.SelectedColor != ""
}

// encodeJSON marshals v without HTML escaping so stored text stays as sent
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// LineTotal returns price × quantity
func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Variant returns a display label for the selected size and color
func (li LineItem) Variant() string {
	switch {
	case li.SelectedSize != "" && li.SelectedColor != "":
		return li.SelectedSize + " / " + li.SelectedColor
	case li.SelectedSize != "":
		return li.SelectedSize
	default:
		return li.SelectedColor
	}
}

// NotificationKind selects the toast style
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
)

// Notification is transient user feedback emitted by the cart
type Notification struct {
	Text string
	Kind NotificationKind
}

// Slide is one hero banner entry
type Slide struct {
	Image      string
	Title      string
	Subtitle   string
	ButtonText string
}

// Promo is the promotional banner shown between product rows
type Promo struct {
	Image      string
	Title      string
	Subtitle   string
	ButtonText string
}
