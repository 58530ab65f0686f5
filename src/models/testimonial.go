package models

// Testimonial is a client quote shown on the public site.
type Testimonial struct {
	ID           int64   `json:"id"`
	Quote        string  `json:"quote"`
	ClientName   string  `json:"client_name"`
	ClientTitle  *string `json:"client_title"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
}

// TestimonialUpdate carries the updatable testimonial fields. Nil means
// "leave unchanged".
type TestimonialUpdate struct {
	Quote        *string `json:"quote"`
	ClientName   *string `json:"client_name"`
	ClientTitle  *string `json:"client_title"`
	ImageURL     *string `json:"image_url"`
	DisplayOrder *int    `json:"display_order"`
}

// Fields returns the present fields in allow-list order.
func (u TestimonialUpdate) Fields() []UpdateField {
	var fields []UpdateField
	if u.Quote != nil {
		fields = append(fields, UpdateField{Column: "quote", Value: *u.Quote})
	}
	if u.ClientName != nil {
		fields = append(fields, UpdateField{Column: "client_name", Value: *u.ClientName})
	}
	if u.ClientTitle != nil {
		fields = append(fields, UpdateField{Column: "client_title", Value: *u.ClientTitle})
	}
	if u.ImageURL != nil {
		fields = append(fields, UpdateField{Column: "image_url", Value: *u.ImageURL})
	}
	if u.DisplayOrder != nil {
		fields = append(fields, UpdateField{Column: "display_order", Value: *u.DisplayOrder})
	}
	return fields
}
