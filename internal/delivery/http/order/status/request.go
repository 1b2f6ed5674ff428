package status

import "github.com/tumbleweedd/order_pipeline/internal/domain/models"

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending completed cancelled"`
}
