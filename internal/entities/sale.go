package entities

import "time"

type Sale struct {
	OrderID     string `json:"orderId"`
	Total       Amount `json:"total"`
	Items       []Item `json:"items"`
	DeliveredAt string `json:"deliveredAt"`
}

// NewSale snapshots the order as delivered at the given moment.
func NewSale(o Order, deliveredAt time.Time) Sale {
	items := make([]Item, len(o.Items))
	copy(items, o.Items)

	return Sale{
		OrderID:     o.OrderID,
		Total:       o.Total,
		Items:       items,
		DeliveredAt: FormatTime(deliveredAt),
	}
}
