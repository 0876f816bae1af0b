package events

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgconfig "github.com/Skotchmaster/shop_api/pkg/config"
)

func TestEncode(t *testing.T) {
	msg, err := encode(TopicCart, "7", map[string]any{"type": "cart_checked_out", "user_id": 7})
	require.NoError(t, err)

	assert.Equal(t, TopicCart, msg.Topic)
	assert.Equal(t, []byte("7"), msg.Key)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "cart_checked_out", body["type"])
	assert.EqualValues(t, 7, body["user_id"])

	_, err = encode(TopicCart, "7", map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	assert.Error(t, err)
}

func TestProducer_Publish_Live(t *testing.T) {
	brokers := pkgconfig.CSV(os.Getenv("KAFKA_TEST_BROKERS"))
	if len(brokers) == 0 {
		t.Skip("KAFKA_TEST_BROKERS is required for this test")
	}

	p, err := NewProducer(brokers)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	conn, err := kafka.DialLeader(ctx, "tcp", brokers[0], TopicProducts, 0)
	require.NoError(t, err)
	end, err := conn.ReadLastOffset()
	require.NoError(t, err)
	_ = conn.Close()

	require.NoError(t, p.PublishEvent(ctx, TopicProducts, "1", map[string]any{"type": "product_created", "product_id": 1}))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   brokers,
		Topic:     TopicProducts,
		Partition: 0,
		MaxWait:   time.Second,
	})
	defer r.Close()
	require.NoError(t, r.SetOffset(end))

	m, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	var event map[string]any
	require.NoError(t, json.Unmarshal(m.Value, &event))
	assert.Equal(t, "product_created", event["type"])
}
