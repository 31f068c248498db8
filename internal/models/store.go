package models

type Store struct {
	ID         int64   `json:"id" validate:"gte=0"`
	Name       string  `json:"name" validate:"required"`
	Slug       string  `json:"slug" validate:"required"`
	OwnerEmail *string `json:"owner_email"`
	RUC        *int64  `json:"ruc"`
	Plan       *string `json:"plan"`
	Settings   any     `json:"settings"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  *string `json:"updated_at"`
	Status     bool    `json:"status"`
}

// CreateStorePayload es el cuerpo de POST /stores. El slug lo asigna el backend.
type CreateStorePayload struct {
	Name       string  `json:"name"`
	OwnerEmail *string `json:"owner_email,omitempty"`
	RUC        *int64  `json:"ruc,omitempty"`
	Plan       *string `json:"plan,omitempty"`
	Settings   any     `json:"settings,omitempty"`
}

// ToStore copia la fila; la tienda no cambia de forma entre backend y app.
func ToStore(row Store) Store {
	return row
}
