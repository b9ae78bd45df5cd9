package entities

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDelivered = "delivered"
)

// TimeLayout is the ISO-8601 layout used for createdAt and deliveredAt.
const TimeLayout = "2006-01-02T15:04:05.000Z"

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    Amount `json:"price"`
	Image    string `json:"image,omitempty"`
}

// UnmarshalJSON also accepts quantities stored as numeric strings, such as
// "2". A quantity that is not a number reads as zero.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		Quantity json.RawMessage `json:"quantity"`
	}{plain: (*plain)(i)}
	err := json.Unmarshal(data, &aux)
	i.Quantity = int(Amount(aux.Quantity).Number().IntPart())
	return err
}

type Order struct {
	OrderID   string `json:"orderId"`
	Items     []Item `json:"items"`
	Total     Amount `json:"total"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrMissingStatus = errors.New("missing status")
)

// FormatTime renders t the way createdAt and deliveredAt are stored.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime accepts any RFC 3339 timestamp, with or without fractional seconds.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
