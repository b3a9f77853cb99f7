package consumer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

func newTestConsumer() *NotificationConsumer {
	return NewNotificationConsumer(nil, &Config{QueueName: "payment-notify"}, logger.NewNopLogger())
}

func TestParseMessage(t *testing.T) {
	c := newTestConsumer()

	data := json.RawMessage(`{"order_id":"order-1","order_ref":"ref-1","booking_no":"QWK-1","user_id":"user-1","status":"paid","amount":499,"currency":"INR"}`)
	n, err := c.parseMessage(data)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", n.OrderRef)
	assert.Equal(t, "paid", n.Status)
	assert.Equal(t, 499.0, n.Amount)
}

func TestParseMessageRejectsIncomplete(t *testing.T) {
	c := newTestConsumer()

	_, err := c.parseMessage(json.RawMessage(`{"order_ref":"ref-1"}`))
	assert.Error(t, err)

	_, err = c.parseMessage(json.RawMessage(`{"status":"paid"}`))
	assert.Error(t, err)

	_, err = c.parseMessage(json.RawMessage(`not json`))
	assert.Error(t, err)
}
