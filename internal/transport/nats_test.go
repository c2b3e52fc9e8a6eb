package transport_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpay/restbase/internal/transport"
	"github.com/sweetpay/restbase/pkg/restbase"
)

// TestNATS_Send needs a reachable NATS server and is skipped otherwise:
//
//	RESTBASE_NATS_URL=nats://localhost:4222 go test ./internal/transport/
func TestNATS_Send(t *testing.T) {
	natsURL := os.Getenv("RESTBASE_NATS_URL")
	if natsURL == "" {
		t.Skip("RESTBASE_NATS_URL not set, skipping NATS transport test")
	}

	conn, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer conn.Close()

	const subject = "restbase.test.api"

	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		reply := nats.NewMsg(msg.Reply)
		reply.Header.Set("Restbase-Status", "201")
		reply.Header.Set("Content-Type", "application/json")
		reply.Data = []byte(`{"echo_method": "` + msg.Header.Get("Restbase-Method") + `"}`)

		_ = msg.RespondMsg(reply)
	})
	require.NoError(t, err)

	defer func() {
		_ = sub.Unsubscribe()
	}()

	headers := make(http.Header)
	headers.Set("Authorization", "secret-token")

	resp, err := transport.NewNATS(conn, subject).Send(context.Background(), &restbase.TransportRequest{
		Method:  http.MethodPost,
		URL:     "https://checkout.test.sweetpay.com/api/sessions",
		Headers: headers,
		Body:    []byte(`{"amount": 100}`),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	assert.JSONEq(t, `{"echo_method": "POST"}`, string(resp.Body))
}

func TestNATS_Send_Timeout(t *testing.T) {
	natsURL := os.Getenv("RESTBASE_NATS_URL")
	if natsURL == "" {
		t.Skip("RESTBASE_NATS_URL not set, skipping NATS transport test")
	}

	conn, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer conn.Close()

	// Nobody subscribes to this subject, so the request must time out.
	_, err = transport.NewNATS(conn, "restbase.test.void").Send(context.Background(), &restbase.TransportRequest{
		Method:  http.MethodGet,
		URL:     "https://checkout.test.sweetpay.com/api/sessions",
		Timeout: 200 * time.Millisecond,
	})
	require.Error(t, err)
}
