package auth

// Claims representa la identidad extraída de un token de sesión.
type Claims struct {
	// OpenID es el identificador externo estable del dueño.
	OpenID string
}

// Principal es el dueño ya resuelto que el gateway adjunta al contexto.
type Principal struct {
	OwnerID  string
	OpenID   string
	Nickname string
}
