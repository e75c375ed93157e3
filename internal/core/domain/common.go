package domain

import "strings"

// ProductRef is the denormalized product summary the backend embeds as product_detail.
type ProductRef struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name,omitempty"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	SupplierCountry SupplierCountry `json:"supplier_country,omitempty"`
}

// UserRef is the embedded summary of a staff account (created_by_detail, salesman_detail, ...).
type UserRef struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// DisplayName returns "First Last", falling back to the username.
func (u *UserRef) DisplayName() string {
	if u == nil {
		return ""
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// PartyRef is the embedded summary of a customer or worker.
type PartyRef struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Telephone string `json:"telephone,omitempty"`
}

// Message is the body of upstream sub-actions that only answer with text.
type Message struct {
	Message string `json:"message"`
}
