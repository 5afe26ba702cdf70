package requests

type ResetPassword struct {
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ResetPasswordBackend is the body the backend expects.
type ResetPasswordBackend struct {
	NewPassword string `json:"newPassword"`
}
