package request

// AcceptFoodRequestRequest is optional. Without foodId the listing the
// request was made against is used.
type AcceptFoodRequestRequest struct {
	FoodID string `json:"foodId"`
}
