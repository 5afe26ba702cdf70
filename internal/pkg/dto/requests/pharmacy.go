package requests

type UpdatePharmacy struct {
	FirstName     string   `json:"first_name" validate:"required"`
	LastName      string   `json:"last_name" validate:"required"`
	Gender        string   `json:"gender,omitempty"`
	Phone         string   `json:"phone" validate:"required"`
	PharmacyName  string   `json:"ph_name" validate:"required"`
	Experience    string   `json:"expierence,omitempty"`
	Summary       string   `json:"summery,omitempty"`
	Address       string   `json:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	LogoImages    string   `json:"logo_images,omitempty"`
	LicenseImages string   `json:"license_images,omitempty"`
}
