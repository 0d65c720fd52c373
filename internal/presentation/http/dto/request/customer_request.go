package request

// CreateCustomerRequest represents the create customer payload
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UpdateCustomerRequest represents the update customer payload. Omitted fields
// are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
