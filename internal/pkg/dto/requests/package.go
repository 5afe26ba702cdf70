package requests

type CreatePackage struct {
	NameEn         string   `json:"name_en" validate:"required"`
	NameAr         string   `json:"name_ar" validate:"required"`
	DescriptionEn  string   `json:"description_en,omitempty"`
	DescriptionAr  string   `json:"description_ar,omitempty"`
	Price          float64  `json:"price" validate:"gte=0"`
	DurationInDays int      `json:"duration_in_days,omitempty" validate:"gte=0"`
	IsActive       bool     `json:"is_active"`
	Features       []string `json:"features,omitempty"`
}
