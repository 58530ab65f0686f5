package models

// Partner is a client logo shown on the public site. Partners have no
// display_order column; lists are ordered by id.
type Partner struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// PartnerUpdate carries the updatable partner fields. Nil means "leave
// unchanged".
type PartnerUpdate struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
}

// Fields returns the present fields in allow-list order.
func (u PartnerUpdate) Fields() []UpdateField {
	var fields []UpdateField
	if u.Name != nil {
		fields = append(fields, UpdateField{Column: "name", Value: *u.Name})
	}
	if u.LogoURL != nil {
		fields = append(fields, UpdateField{Column: "logo_url", Value: *u.LogoURL})
	}
	return fields
}
