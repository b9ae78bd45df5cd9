package handler

import (
	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

// Item is one line of an order
type Item struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    entities.Amount `json:"price" swaggertype:"number"`
	Image    string          `json:"image,omitempty"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	Items   []Item          `json:"items" validate:"required,min=1,dive"`
	Total   entities.Amount `json:"total" swaggertype:"number"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Status  string          `json:"status,omitempty"`
}

// CreateOrderResponse carries the id of the new order
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// UpdateStatusRequest sets an order's status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OKResponse acknowledges a mutation
type OKResponse struct {
	OK bool `json:"ok"`
}

// Order is an order as stored
type Order struct {
	OrderID   string          `json:"orderId"`
	Items     []Item          `json:"items"`
	Total     entities.Amount `json:"total" swaggertype:"number"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"createdAt"`
}

// Sale is the record of one delivery
type Sale struct {
	OrderID     string          `json:"orderId"`
	Total       entities.Amount `json:"total" swaggertype:"number"`
	Items       []Item          `json:"items"`
	DeliveredAt string          `json:"deliveredAt"`
}

func ItemJSONToEntity(i Item) entities.Item {
	return entities.Item{
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
		Image:    i.Image,
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
		Image:    i.Image,
	}
}

func itemsToJSON(items []entities.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, ItemEntityToJSON(it))
	}
	return out
}

func (r CreateOrderRequest) ToEntity() entities.Order {
	items := make([]entities.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return entities.Order{
		Items:   items,
		Total:   r.Total,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Status:  r.Status,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:   o.OrderID,
		Items:     itemsToJSON(o.Items),
		Total:     o.Total,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func SaleEntityToJSON(s entities.Sale) Sale {
	return Sale{
		OrderID:     s.OrderID,
		Total:       s.Total,
		Items:       itemsToJSON(s.Items),
		DeliveredAt: s.DeliveredAt,
	}
}
