package restbase_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpay/restbase/pkg/restbase"
)

func TestNotRegisteredError(t *testing.T) {
	err := &restbase.NotRegisteredError{Namespace: "payment", Version: 2}
	assert.Equal(t, "no resource registered for namespace=payment and version=2", err.Error())
}

func TestAPIError(t *testing.T) {
	t.Run("message with code", func(t *testing.T) {
		err := &restbase.APIError{Message: "the API request was unsuccessful", Code: 404}
		assert.Equal(t, "the API request was unsuccessful (code: 404)", err.Error())
	})

	t.Run("message without code", func(t *testing.T) {
		err := &restbase.APIError{Message: "the payload could not be decoded"}
		assert.Equal(t, "the payload could not be decoded", err.Error())
	})

	t.Run("wraps an underlying error", func(t *testing.T) {
		underlying := errors.New("invalid character")
		err := &restbase.APIError{Message: "decoding failed", Code: 500, Err: underlying}

		assert.Equal(t, "decoding failed (code: 500): invalid character", err.Error())
		require.ErrorIs(t, err, underlying)
	})

	t.Run("fields", func(t *testing.T) {
		data := map[string]interface{}{"error": "gone"}
		raw := &restbase.RawResponse{StatusCode: 404, Body: []byte(`{"error": "gone"}`)}
		err := &restbase.APIError{Message: "not found", Data: data, Code: 404, Response: raw}

		assert.Equal(t, map[string]interface{}{
			"msg":      "not found",
			"data":     data,
			"code":     404,
			"response": raw,
			"exc":      error(nil),
		}, err.Fields())
	})
}

func TestTransportError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := &restbase.TransportError{Method: "POST", URL: "https://api.example.com/x", Err: underlying}

	assert.Equal(t, "transport failure: POST https://api.example.com/x: connection refused", err.Error())
	require.ErrorIs(t, err, underlying)
	assert.True(t, restbase.IsTransportError(err))
	assert.False(t, restbase.IsAPIError(err))
}

func TestStatusCode(t *testing.T) {
	t.Run("extracts the code from a wrapped API error", func(t *testing.T) {
		wrapped := fmt.Errorf("creating session: %w", &restbase.APIError{Message: "bad request", Code: 400})

		code, ok := restbase.StatusCode(wrapped)
		require.True(t, ok)
		assert.Equal(t, 400, code)
	})

	t.Run("reports absence", func(t *testing.T) {
		_, ok := restbase.StatusCode(errors.New("plain failure"))
		assert.False(t, ok)
	})
}

func TestResponse_String(t *testing.T) {
	raw := &restbase.RawResponse{StatusCode: http.StatusOK, Body: []byte(`{"status": "OK"}`)}
	resp := restbase.NewResponse(raw, http.StatusOK, map[string]interface{}{"status": "OK"})

	assert.Equal(t, "<Response: code=200, data=map[status:OK]>", resp.String())
	assert.Same(t, raw, resp.Raw())
	assert.Equal(t, http.StatusOK, resp.Code())
}
