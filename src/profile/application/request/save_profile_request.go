package request

// SaveProfileRequest representa la petición para crear o actualizar un perfil
type SaveProfileRequest struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}
