package domain

import "time"

// Product is a marketplace listing. Read-only in this service.
type Product struct {
	ProductID string    `json:"id" dynamodbav:"product_id"`
	CreatedBy string    `json:"created_by" dynamodbav:"created_by"`
	Name      string    `json:"name" dynamodbav:"name"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

// DisplayName returns the product name, defaulting to "Product" when unset.
func (p *Product) DisplayName() string {
	if p == nil || p.Name == "" {
		return "Product"
	}
	return p.Name
}
