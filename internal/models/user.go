package models

type User struct {
	ID             int64   `json:"id" validate:"gte=0"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Slug           string  `json:"slug" validate:"required"`
	ExternalAuthID *string `json:"external_auth_id"`
	ClerkID        *string `json:"clerk_id"`
	Email          string  `json:"email"`
	ImageURL       *string `json:"image_url"`
	IsActive       bool    `json:"is_active"`
	Role           *string `json:"role"`
	AuthMethod     *string `json:"auth_method"`
	ProviderUserID *string `json:"provider_user_id"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
	StoreID        *int64  `json:"store_id"`
}

// UpdateUserPayload son los campos que la app puede parchar.
type UpdateUserPayload struct {
	StoreID   *int64 `json:"store_id,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func ToUser(row User) User {
	return row
}
