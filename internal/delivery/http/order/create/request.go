package create

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	UserRef     string           `json:"userRef" validate:"required"`
	ProductRef  string           `json:"productRef" validate:"required"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	TotalAmount *decimal.Decimal `json:"totalAmount" validate:"required"`
}
