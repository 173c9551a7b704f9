package auth

// Claims es la identidad autenticada que viaja en el contexto del request.
// Solo lleva la referencia mínima; el resto se rehidrata por lookup.
type Claims struct {
	UserID int64
	Email  string
}
