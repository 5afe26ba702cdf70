package requests

type AcceptCancelRequest struct {
	ID     string `json:"id" validate:"required"`
	Reason string `json:"reason,omitempty"`
}
