package pets

import "time"

// Pet é o animal de um cliente da clínica.
// Species e Breed são texto livre ("Cachorro", "Labrador"), como no cadastro.
type Pet struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`

	BirthDate *time.Time `json:"birth_date,omitempty"`
}
