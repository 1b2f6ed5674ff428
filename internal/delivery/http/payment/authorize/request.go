package authorize

type AuthorizeRequest struct {
	Amount   int64  `json:"amount" validate:"gt=0"`
	Currency string `json:"currency" validate:"required,len=3,alpha"`
	OrderID  string `json:"orderId" validate:"required,uuid"`
}
