package requests

// DoctorAdditionalInfo is the doctor profile completion form. Clinic and
// ClinicConsultationPrice are pointers so a cleared clinic is sent as null.
type DoctorAdditionalInfo struct {
	Specializations         []string       `json:"specializations,omitempty"`
	Summary                 string         `json:"summary,omitempty"`
	Experience              int            `json:"experience,omitempty" validate:"gte=0"`
	ConsultationPrice       float64        `json:"consultation_price,omitempty" validate:"gte=0"`
	ClinicConsultationPrice *float64       `json:"clinic_consultation_price" validate:"omitempty,gte=0"`
	Clinic                  *DoctorClinic  `json:"clinic"`
	Availability            []Availability `json:"avaliablity" validate:"availability,dive"`
	Latitude                string         `json:"latitude,omitempty"`
	Longitude               string         `json:"longitude,omitempty"`
	CoverImage              string         `json:"cover_image,omitempty"`
	LicenseImages           *string        `json:"license_images"`
}

type DoctorClinic struct {
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	IsActive  bool     `json:"is_active"`
}

type Availability struct {
	Day      int    `json:"day" validate:"gte=0,lte=6"`
	IsActive bool   `json:"is_active"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

// HasClinicPrice reports whether a non-zero clinic consultation price is set.
func (d *DoctorAdditionalInfo) HasClinicPrice() bool {
	return d.ClinicConsultationPrice != nil && *d.ClinicConsultationPrice != 0
}

func (d *DoctorAdditionalInfo) HasClinicName() bool {
	return d.Clinic != nil && d.Clinic.Name != ""
}

// ClearZeroClinicPrice drops both the clinic and its price when the price is
// explicitly zero.
func (d *DoctorAdditionalInfo) ClearZeroClinicPrice() {
	if d.ClinicConsultationPrice != nil && *d.ClinicConsultationPrice == 0 {
		d.ClinicConsultationPrice = nil
		d.Clinic = nil
	}
}
