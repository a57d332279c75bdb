package domain

import "context"

// RawAddress is the address substructure as returned by the remote user API.
type RawAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// RawUser is one record as returned by the remote user API, before the
// dashboard transform assigns department, rating and bio.
type RawUser struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	Phone     string     `json:"phone"`
	Image     string     `json:"image"`
	Address   RawAddress `json:"address"`
}

// EmployeeSource fetches a batch of raw user records from the remote API.
type EmployeeSource interface {
	Fetch(ctx context.Context, limit int) ([]RawUser, error)
}

// BlobStorage is a single named slot of durable bytes. The bookmark store
// reads it once at construction and fully overwrites it after every mutation.
type BlobStorage interface {
	Load() ([]byte, error)
	Store(data []byte) error
}
