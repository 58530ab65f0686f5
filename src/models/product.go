package models

// Product is an entry in the public product portfolio. Optional columns are
// pointers so NULL survives the round trip to the store.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	IconClass    string  `json:"icon_class"`
	Category     *string `json:"category"`
	CategoryURL  *string `json:"category_url"`
	Theme        *string `json:"theme"`
	IsFeatured   bool    `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
	LiveURL      *string `json:"live_url"`
	BadgeText    *string `json:"badge_text"`
}

// ProductUpdate carries the updatable product fields. Nil means "leave
// unchanged"; id and any column not listed here cannot be touched through
// an update.
type ProductUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	IconClass    *string `json:"icon_class"`
	Category     *string `json:"category"`
	CategoryURL  *string `json:"category_url"`
	Theme        *string `json:"theme"`
	DisplayOrder *int    `json:"display_order"`
	IsFeatured   *bool   `json:"is_featured"`
	LiveURL      *string `json:"live_url"`
	BadgeText    *string `json:"badge_text"`
}

// Fields returns the present fields in allow-list order.
func (u ProductUpdate) Fields() []UpdateField {
	var fields []UpdateField
	if u.Name != nil {
		fields = append(fields, UpdateField{Column: "name", Value: *u.Name})
	}
	if u.Description != nil {
		fields = append(fields, UpdateField{Column: "description", Value: *u.Description})
	}
	if u.IconClass != nil {
		fields = append(fields, UpdateField{Column: "icon_class", Value: *u.IconClass})
	}
	if u.Category != nil {
		fields = append(fields, UpdateField{Column: "category", Value: *u.Category})
	}
	if u.CategoryURL != nil {
		fields = append(fields, UpdateField{Column: "category_url", Value: *u.CategoryURL})
	}
	if u.Theme != nil {
		fields = append(fields, UpdateField{Column: "theme", Value: *u.Theme})
	}
	if u.DisplayOrder != nil {
		fields = append(fields, UpdateField{Column: "display_order", Value: *u.DisplayOrder})
	}
	if u.IsFeatured != nil {
		fields = append(fields, UpdateField{Column: "is_featured", Value: *u.IsFeatured})
	}
	if u.LiveURL != nil {
		fields = append(fields, UpdateField{Column: "live_url", Value: *u.LiveURL})
	}
	if u.BadgeText != nil {
		fields = append(fields, UpdateField{Column: "badge_text", Value: *u.BadgeText})
	}
	return fields
}
