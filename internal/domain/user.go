package domain

import "time"

// User represents the locally stored profile for an identity-provider user.
// The row id matches the provider's stable user id; is_pro is the only field
// this service ever mutates on behalf of the payment webhook.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	State     string    `json:"state" db:"state"`
	IsPro     bool      `json:"is_pro" db:"is_pro"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is a resolved session: the provider-confirmed user combined with
// the local profile flags. It is passed explicitly to every protected
// operation; there is no ambient session state.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	State string `json:"state"`
	IsPro bool   `json:"is_pro"`
}

// State is a jurisdiction code offered in profile settings.
type State struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}
