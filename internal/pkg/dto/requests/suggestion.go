package requests

type SuggestionReply struct {
	SuggestionID string `json:"suggestion_id" validate:"required"`
	Reply        string `json:"reply" validate:"required"`
}
