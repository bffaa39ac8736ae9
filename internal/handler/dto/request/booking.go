package request

type RespondBookingRequest struct {
	Decision string `json:"decision" binding:"required"`
}
