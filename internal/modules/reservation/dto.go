package reservation

type ChildRequest struct {
	ChildUserID *int64  `json:"child_user_id"`
	AgeCategory string  `json:"age_category" binding:"required"`
	Price       float64 `json:"price"`
	Weight      float64 `json:"weight"`
}

type ReserveRequest struct {
	SlotID       int64          `json:"slot_id" binding:"required"`
	HolderID     int64          `json:"holder_id"`
	Price        float64        `json:"price" binding:"gte=0"`
	HolderWeight float64        `json:"holder_weight"`
	Children     []ChildRequest `json:"children"`
	PromoCode    string         `json:"promo_code"`
	CreatedByID  *int64         `json:"-"`
}

type UpdateStatusRequest struct {
	ClientStatus  *string `json:"client_status"`
	PaymentStatus *string `json:"payment_status"`
}

type OccupancyResponse struct {
	SlotID int64   `json:"slot_id"`
	People int     `json:"people"`
	Weight float64 `json:"weight"`
}
