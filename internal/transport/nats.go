package transport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nats-io/nats.go"

	"github.com/sweetpay/restbase/internal/constants"
	"github.com/sweetpay/restbase/pkg/restbase"
)

// NATS dispatches requests as request/reply exchanges over a NATS subject.
// The method and URL travel as message headers, the encoded body as the
// message payload; the replier reports the status code in the
// Restbase-Status header. It exists to prove the Transport contract is not
// tied to HTTP.
type NATS struct {
	conn    *nats.Conn
	subject string
}

// NewNATS creates a NATS transport publishing to subject.
func NewNATS(conn *nats.Conn, subject string) *NATS {
	return &NATS{conn: conn, subject: subject}
}

// Send implements restbase.Transport.
func (t *NATS) Send(ctx context.Context, req *restbase.TransportRequest) (*restbase.RawResponse, error) {
	msg := nats.NewMsg(t.subject)
	msg.Header.Set(constants.NATSMethodHeader, req.Method)
	msg.Header.Set(constants.NATSURLHeader, req.URL)

	for key, values := range req.Headers {
		for _, value := range values {
			msg.Header.Add(key, value)
		}
	}

	msg.Data = req.Body

	if req.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	reply, err := t.conn.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("requesting over NATS subject %s: %w", t.subject, err)
	}

	statusCode := http.StatusOK

	status := reply.Header.Get(constants.NATSStatusHeader)
	if status != "" {
		statusCode, err = strconv.Atoi(status)
		if err != nil {
			return nil, fmt.Errorf("parsing %s header %q: %w", constants.NATSStatusHeader, status, err)
		}
	}

	headers := make(http.Header, len(reply.Header))
	for key, values := range reply.Header {
		headers[key] = append([]string(nil), values...)
	}

	return &restbase.RawResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       reply.Data,
	}, nil
}
