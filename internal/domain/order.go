package domain

type Order struct {
	ID      string      `json:"id"`
	Phone   string      `json:"phone"`
	AdminID string      `json:"adminId"`
	Item    string      `json:"item"`
	Status  OrderStatus `json:"status"`
	Created int64       `json:"created"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pendente"
	OrderAccepted  OrderStatus = "aceito"
	OrderRejected  OrderStatus = "recusado"
	OrderDelivered OrderStatus = "entregue"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderDelivered:
		return true
	default:
		return false
	}
}

type CreateOrderInput struct {
	AdminID string `json:"adminId"`
	Item    string `json:"item"`
}
