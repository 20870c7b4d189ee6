package types

import "strings"

// ShippingInfo is the delivery block submitted with a checkout. It is stored
// verbatim on the transaction snapshot.
type ShippingInfo struct {
	FullName   string `json:"full_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// OneLine renders the shipping block as a single display address.
func (s ShippingInfo) OneLine() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{s.Address, s.City, s.PostalCode, s.Country} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
