// Package admin builds the order-management dashboard: which orders sit in
// which tab, what can be done with them, and how bills and sales read.
package admin

import (
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/sales"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	StoreName    = "Mithila ChitraKala Store"
	StoreAddress = "Janakpur-13, Nepal"

	// Currency prefixes every amount shown to the store owner.
	Currency = "रु"

	displayLayout = "1/2/2006, 3:04:05 PM"
)

type Tab string

const (
	TabPending   Tab = "pending"
	TabAccepted  Tab = "accepted"
	TabBilling   Tab = "billing"
	TabDelivered Tab = "delivered"
)

// TabOrder is the order tabs appear in on the dashboard.
var TabOrder = []Tab{TabPending, TabAccepted, TabBilling, TabDelivered}

func (t Tab) Title() string {
	switch t {
	case TabPending:
		return "Pending"
	case TabAccepted:
		return "Accepted"
	case TabBilling:
		return "Billing"
	case TabDelivered:
		return "Delivered"
	}
	return string(t)
}

type Tabs struct {
	Pending   []entities.Order
	Accepted  []entities.Order
	Billing   []entities.Order
	Delivered []entities.Order
}

// Partition sorts orders into tabs. An order without a status is pending;
// billing holds the same orders as accepted. Orders with any other status
// are in no tab.
func Partition(orders []entities.Order) Tabs {
	var t Tabs
	for _, o := range orders {
		switch o.Status {
		case entities.StatusPending, "":
			t.Pending = append(t.Pending, o)
		case entities.StatusAccepted:
			t.Accepted = append(t.Accepted, o)
		case entities.StatusDelivered:
			t.Delivered = append(t.Delivered, o)
		}
	}
	t.Billing = t.Accepted
	return t
}

func (t Tabs) Orders(tab Tab) []entities.Order {
	switch tab {
	case TabPending:
		return t.Pending
	case TabAccepted:
		return t.Accepted
	case TabBilling:
		return t.Billing
	case TabDelivered:
		return t.Delivered
	}
	return nil
}

type ActionKind string

const (
	ActionDetails ActionKind = "details"
	ActionStatus  ActionKind = "status"
	ActionBill    ActionKind = "bill"
)

type Action struct {
	Kind  ActionKind
	Label string
	// Status is the target status of an ActionStatus.
	Status string
}

func Actions(tab Tab) []Action {
	actions := []Action{{Kind: ActionDetails, Label: "Details"}}
	switch tab {
	case TabPending:
		actions = append(actions, Action{Kind: ActionStatus, Label: "Accept", Status: entities.StatusAccepted})
	case TabAccepted:
		actions = append(actions,
			Action{Kind: ActionStatus, Label: "Mark Pending", Status: entities.StatusPending},
			Action{Kind: ActionStatus, Label: "Deliver", Status: entities.StatusDelivered},
		)
	case TabBilling, TabDelivered:
		actions = append(actions, Action{Kind: ActionBill, Label: "Print Bill"})
	}
	return actions
}

type OrderRow struct {
	OrderID string
	Name    string
	Email   string
	Total   string
	Placed  string
	Items   int
	Status  string
	Actions []Action
}

type TabView struct {
	Tab   Tab
	Title string
	Rows  []OrderRow
}

func newTabView(tab Tab, orders []entities.Order, loc *time.Location) TabView {
	actions := Actions(tab)
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = entities.StatusPending
		}
		rows = append(rows, OrderRow{
			OrderID: o.OrderID,
			Name:    o.Name,
			Email:   o.Email,
			Total:   o.Total.String(),
			Placed:  DisplayTime(o.CreatedAt, loc),
			Items:   len(o.Items),
			Status:  status,
			Actions: actions,
		})
	}
	return TabView{Tab: tab, Title: tab.Title(), Rows: rows}
}

type DetailItem struct {
	Name     string
	Image    string
	Quantity int
	Price    string
}

type Detail struct {
	OrderID string
	Name    string
	Email   string
	Phone   string
	Address string
	Total   string
	Status  string
	Placed  string
	Items   []DetailItem
}

func NewDetail(o entities.Order, loc *time.Location) Detail {
	items := make([]DetailItem, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, DetailItem{
			Name:     i.Name,
			Image:    i.Image,
			Quantity: i.Quantity,
			Price:    i.Price.String(),
		})
	}
	return Detail{
		OrderID: o.OrderID,
		Name:    o.Name,
		Email:   o.Email,
		Phone:   o.Phone,
		Address: o.Address,
		Total:   o.Total.String(),
		Status:  o.Status,
		Placed:  DisplayTime(o.CreatedAt, loc),
		Items:   items,
	}
}

type BillLine struct {
	Name     string
	Quantity int
	Price    string
	Unit     decimal.Decimal
	Subtotal decimal.Decimal
}

func (l BillLine) PriceText() string {
	return Money(l.Unit.InexactFloat64())
}

func (l BillLine) SubtotalText() string {
	return Money(l.Subtotal.InexactFloat64())
}

type Bill struct {
	StoreName    string
	StoreAddress string

	OrderID string
	Name    string
	Email   string
	Phone   string
	Address string
	Lines   []BillLine
	Total   string
	Amount  decimal.Decimal
	Placed  string
}

func (b Bill) TotalText() string {
	return Money(b.Amount.InexactFloat64())
}

// NewBill prices every line from the stored price, ignoring currency
// symbols and separators. A line without a quantity counts once.
func NewBill(o entities.Order, loc *time.Location) Bill {
	lines := make([]BillLine, 0, len(o.Items))
	for _, i := range o.Items {
		qty := i.Quantity
		if qty == 0 {
			qty = 1
		}
		unit := i.Price.Loose()
		lines = append(lines, BillLine{
			Name:     i.Name,
			Quantity: i.Quantity,
			Price:    i.Price.String(),
			Unit:     unit,
			Subtotal: unit.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return Bill{
		StoreName:    StoreName,
		StoreAddress: StoreAddress,
		OrderID:      o.OrderID,
		Name:         o.Name,
		Email:        o.Email,
		Phone:        o.Phone,
		Address:      o.Address,
		Lines:        lines,
		Total:        o.Total.String(),
		Amount:       o.Total.Loose(),
		Placed:       DisplayTime(o.CreatedAt, loc),
	}
}

type SaleRow struct {
	OrderID   string
	Total     string
	Items     string
	Delivered string
}

func SaleRows(records []entities.Sale, loc *time.Location) []SaleRow {
	rows := make([]SaleRow, 0, len(records))
	for _, s := range records {
		names := make([]string, 0, len(s.Items))
		for _, i := range s.Items {
			qty := i.Quantity
			if qty == 0 {
				qty = 1
			}
			names = append(names, fmt.Sprintf("%s (x%d)", i.Name, qty))
		}
		rows = append(rows, SaleRow{
			OrderID:   s.OrderID,
			Total:     Money(s.Total.Number().InexactFloat64()),
			Items:     strings.Join(names, ", "),
			Delivered: DisplayTime(s.DeliveredAt, loc),
		})
	}
	return rows
}

type Card struct {
	Label string
	Total string
	Count string
}

type Bar struct {
	Label string
	Value string
	// Height is the bar height as a percentage of the tallest bar.
	Height int
}

// Dashboard is everything the dashboard page shows, built once per request.
type Dashboard struct {
	Status string
	Tabs   []TabView
	Cards  []Card
	Daily  []Bar
	Weekly []Bar
	Sales  []SaleRow
	Report sales.Report
	// Message reports the outcome of the last admin action, if any.
	Message string
}

func NewDashboard(orders []entities.Order, records []entities.Sale, report sales.Report, loc *time.Location) Dashboard {
	tabs := Partition(orders)
	views := make([]TabView, 0, len(TabOrder))
	for _, tab := range TabOrder {
		views = append(views, newTabView(tab, tabs.Orders(tab), loc))
	}

	daily := make([]float64, len(report.Daily))
	dailyLabels := make([]string, len(report.Daily))
	for i, d := range report.Daily {
		daily[i], dailyLabels[i] = d.Total, d.Label
	}
	weekly := make([]float64, len(report.Weekly))
	weeklyLabels := make([]string, len(report.Weekly))
	for i, d := range report.Weekly {
		weekly[i], weeklyLabels[i] = float64(d.Count), d.Label
	}

	return Dashboard{
		Status: fmt.Sprintf("%d orders", len(orders)),
		Tabs:   views,
		Cards: []Card{
			card("Today", report.Day),
			card("This week", report.Week),
			card("This month", report.Month),
			card("This year", report.Year),
		},
		Daily:  bars(dailyLabels, daily, Money),
		Weekly: bars(weeklyLabels, weekly, func(v float64) string { return fmt.Sprintf("%d", int(v)) }),
		Sales:  SaleRows(records, loc),
		Report: report,
	}
}

func card(label string, b sales.Bucket) Card {
	return Card{
		Label: label,
		Total: Currency + " " + Money(b.Total),
		Count: fmt.Sprintf("%d sales", b.Count),
	}
}

func bars(labels []string, values []float64, format func(float64) string) []Bar {
	var peak float64
	for _, v := range values {
		peak = max(peak, v)
	}
	out := make([]Bar, len(values))
	for i, v := range values {
		h := 0
		if peak > 0 {
			h = int(v / peak * 100)
		}
		out[i] = Bar{Label: labels[i], Value: format(v), Height: h}
	}
	return out
}

var printer = message.NewPrinter(language.English)

// Money groups thousands and keeps at most two decimals: 1200.5 is "1,200.5".
func Money(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// DisplayTime renders a stored timestamp in loc. Unparsable values are shown
// as stored.
func DisplayTime(s string, loc *time.Location) string {
	t, err := entities.ParseTime(s)
	if err != nil {
		return s
	}
	return t.In(loc).Format(displayLayout)
}
