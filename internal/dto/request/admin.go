package request

import "marketplace-storefront/internal/data/entity"

type UpdateUserRolesRequest struct {
	Roles []entity.Role `json:"roles" validate:"required,min=1,dive,oneof=ROLE_CUSTOMER ROLE_SELLER ROLE_ADMIN"`
}

type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
}
