package kafka

import "time"

// StockMovementAppliedEvent is emitted after a ledger movement commits
type StockMovementAppliedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	Direction string    `json:"direction"`
	Quantity  int       `json:"quantity"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
	Remark    string    `json:"remark"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// SaleCompletedEvent is emitted after a sale transaction commits
type SaleCompletedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	InvoiceID     uint      `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	CustomerID    *uint     `json:"customer_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	PointsAccrued int       `json:"points_accrued"`
	Timestamp     time.Time `json:"timestamp"`
}

// PurchaseReceivedEvent is emitted after a purchase-order receipt commits
type PurchaseReceivedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	SupplierID  uint      `json:"supplier_id"`
	Status      string    `json:"status"`
	LineCount   int       `json:"line_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockMovementApplied = "stock.movement_applied"
	EventTypeSaleCompleted        = "sale.completed"
	EventTypePurchaseReceived     = "purchase.received"
)

// Kafka topics
const (
	TopicStockMovements   = "stock-movements"
	TopicSalesCompleted   = "sales-completed"
	TopicPurchaseReceipts = "purchase-receipts"
)
