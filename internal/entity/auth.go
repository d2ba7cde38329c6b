package entity

// AuthRequest is the body accepted by the sign-in and sign-up endpoints.
// Extra form fields (cnpj, name, companyName) are accepted and ignored.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of the auth endpoints.
type AuthResponse struct {
	Message string `json:"message"`
}
