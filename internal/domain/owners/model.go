package owners

import "time"

// Owner es la cuenta asociada a una identidad externa (openId).
// Se crea la primera vez que se resuelve el openId y este módulo nunca la borra.
type Owner struct {
	ID     string
	OpenID string // único

	Nickname string

	CreatedAt time.Time
	UpdatedAt time.Time
}
