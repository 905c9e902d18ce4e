package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/maborges/travelmart/internal/logger"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const subjectPaymentRegistered = "pagos.registrado"

// PaymentEvent is emitted after a payment is committed
type PaymentEvent struct {
	EventID      string    `json:"event_id"`
	SaleID       uint64    `json:"id_venta"`
	PaymentID    uint64    `json:"id_pago"`
	CustomerID   uint64    `json:"id_cliente"`
	Amount       float64   `json:"monto"`
	Denomination string    `json:"denominacion"`
	FinalStatus  string    `json:"estado_final"`
	CreatedAt    time.Time `json:"creado_en"`
}

// NATSPublisher publishes payment events to NATS. Publication is best
// effort: a failure is logged, never returned to the payment flow.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &NATSPublisher{conn: conn}, nil
}

// PaymentRegistered publishes the event on pagos.registrado
func (p *NATSPublisher) PaymentRegistered(event PaymentEvent) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("marshal payment event", zap.Error(err))
		return
	}

	if err := p.conn.Publish(subjectPaymentRegistered, data); err != nil {
		logger.Log.Error("publish payment event", zap.Uint64("venta", event.SaleID), zap.Error(err))
	}
}

// Close drains the connection
func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// NopPublisher discards events. Used when no NATS server is configured.
type NopPublisher struct{}

func (NopPublisher) PaymentRegistered(PaymentEvent) {}
