package utils

import (
	"dashboard-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeSuggestionReply(input *requests.SuggestionReply) {
	input.SuggestionID = strings.TrimSpace(input.SuggestionID)
	input.Reply = strings.TrimSpace(input.Reply)
}

func SanitizeAcceptCancelRequest(input *requests.AcceptCancelRequest) {
	input.ID = strings.TrimSpace(input.ID)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeUpdatePharmacy(input *requests.UpdatePharmacy) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.ReplaceAll(strings.TrimSpace(input.Phone), " ", "")
	input.PharmacyName = strings.TrimSpace(input.PharmacyName)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeCreatePackage(input *requests.CreatePackage) {
	input.NameEn = strings.TrimSpace(input.NameEn)
	input.NameAr = strings.TrimSpace(input.NameAr)
	input.DescriptionEn = strings.TrimSpace(input.DescriptionEn)
	input.DescriptionAr = strings.TrimSpace(input.DescriptionAr)

	features := make([]string, 0, len(input.Features))
	for _, feature := range input.Features {
		if feature = strings.TrimSpace(feature); feature != "" {
			features = append(features, feature)
		}
	}
	input.Features = features
}
