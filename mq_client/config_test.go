package mq_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every binding declared in config/amqp.yml must resolve for the code
// that publishes through it: Enqueue("kyc_review"), Enqueue("pix_sweep")
// and the events exchange EnqueueEvent routes member events to.
func TestLoadConfigResolvesDeclaredTopology(t *testing.T) {
	if err := LoadConfig("../config/amqp.yml"); err != nil {
		t.Fatal(err)
	}

	name, kind := GetExchange("events")
	assert.Equal(t, "betconta.events", name)
	assert.Equal(t, "topic", kind)

	assert.Equal(t, "events", GetBindingExchangeId("kyc_review"))
	assert.Equal(t, "betconta.kyc.review", GetRoutingKey("kyc_review"))
	assert.True(t, GetBindingQueue("kyc_review").Durable)

	assert.Equal(t, "events", GetBindingExchangeId("pix_sweep"))
	assert.Equal(t, "betconta.pix.sweep", GetRoutingKey("pix_sweep"))
	assert.True(t, GetBindingQueue("pix_sweep").Durable)
}

func TestGetBindingExchangeIdUnknownBinding(t *testing.T) {
	if err := LoadConfig("../config/amqp.yml"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "", GetBindingExchangeId("order_processor"))
}
