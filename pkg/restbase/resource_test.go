package restbase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpay/restbase/pkg/restbase"
)

// passthroughClassifier surfaces 2xx payloads unchanged and wraps everything
// else in an *APIError.
var passthroughClassifier = restbase.ClassifierFunc(
	func(code int, data interface{}, raw *restbase.RawResponse) (interface{}, error) {
		if code >= 200 && code < 300 {
			return data, nil
		}

		return nil, &restbase.APIError{
			Message:  "the API request was unsuccessful",
			Data:     data,
			Code:     code,
			Response: raw,
		}
	})

func newTestResource(t *testing.T, test bool, transport restbase.Transport) *restbase.Resource {
	t.Helper()

	res, err := restbase.NewResource(restbase.ResourceConfig{
		Test: test,
		Endpoints: restbase.Endpoints{
			Test:       "https://api.test.example.com/v1/",
			Production: "https://api.example.com/v1",
		},
		Classifier: passthroughClassifier,
		Connector:  newTestConnector(t, transport),
	})
	require.NoError(t, err)

	return res
}

func TestNewResource_MissingCapabilities(t *testing.T) {
	conn := newTestConnector(t, &fakeTransport{})

	t.Run("missing classifier", func(t *testing.T) {
		res, err := restbase.NewResource(restbase.ResourceConfig{Connector: conn})
		require.ErrorIs(t, err, restbase.ErrClassifierRequired)
		assert.Nil(t, res)
	})

	t.Run("missing connector", func(t *testing.T) {
		res, err := restbase.NewResource(restbase.ResourceConfig{Classifier: passthroughClassifier})
		require.ErrorIs(t, err, restbase.ErrConnectorRequired)
		assert.Nil(t, res)
	})
}

func TestResource_URL(t *testing.T) {
	t.Run("resolves the test endpoint", func(t *testing.T) {
		res := newTestResource(t, true, &fakeTransport{})

		url, err := res.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://api.test.example.com/v1/", url)
	})

	t.Run("resolves the production endpoint", func(t *testing.T) {
		res := newTestResource(t, false, &fakeTransport{})

		url, err := res.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v1", url)
	})

	t.Run("fails fast on a missing test endpoint", func(t *testing.T) {
		res, err := restbase.NewResource(restbase.ResourceConfig{
			Test:       true,
			Endpoints:  restbase.Endpoints{Production: "https://api.example.com/v1"},
			Classifier: passthroughClassifier,
			Connector:  newTestConnector(t, &fakeTransport{}),
		})
		require.NoError(t, err)

		_, err = res.URL()
		require.ErrorIs(t, err, restbase.ErrNoTestURL)
	})

	t.Run("fails fast on a missing production endpoint", func(t *testing.T) {
		res, err := restbase.NewResource(restbase.ResourceConfig{
			Endpoints:  restbase.Endpoints{Test: "https://api.test.example.com/v1"},
			Classifier: passthroughClassifier,
			Connector:  newTestConnector(t, &fakeTransport{}),
		})
		require.NoError(t, err)

		_, err = res.URL()
		require.ErrorIs(t, err, restbase.ErrNoProductionURL)
	})
}

func TestResource_BuildURL(t *testing.T) {
	res := newTestResource(t, true, &fakeTransport{})

	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{
			name:     "no segments returns the base",
			segments: nil,
			want:     "https://api.test.example.com/v1/",
		},
		{
			name:     "single segment",
			segments: []string{"sessions"},
			want:     "https://api.test.example.com/v1/sessions",
		},
		{
			name:     "multiple segments",
			segments: []string{"sessions", "abc-123", "status"},
			want:     "https://api.test.example.com/v1/sessions/abc-123/status",
		},
		{
			name:     "redundant separators are normalized",
			segments: []string{"/sessions/", "/abc-123"},
			want:     "https://api.test.example.com/v1/sessions/abc-123",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			url, err := res.BuildURL(testCase.segments...)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, url)
		})
	}
}

func TestResource_Call(t *testing.T) {
	t.Run("surfaces successful payloads unchanged", func(t *testing.T) {
		transport := &fakeTransport{
			statusCode: http.StatusOK,
			body:       []byte(`{"status": "OK"}`),
		}
		res := newTestResource(t, true, transport)

		data, err := res.Call(context.Background(), "https://api.test.example.com/v1/sessions", "POST", nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"status": "OK"}, data)
	})

	t.Run("classifies non-2xx responses as API errors", func(t *testing.T) {
		transport := &fakeTransport{
			statusCode: http.StatusNotFound,
			body:       []byte(`{"error": "no such session"}`),
		}
		res := newTestResource(t, true, transport)

		data, err := res.Call(context.Background(), "https://api.test.example.com/v1/sessions/missing", "GET", nil)
		require.Error(t, err)
		assert.Nil(t, data)

		apiErr := &restbase.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Code)
		assert.Equal(t, map[string]interface{}{"error": "no such session"}, apiErr.Data)
		require.NotNil(t, apiErr.Response)
		assert.Equal(t, http.StatusNotFound, apiErr.Response.StatusCode)
		assert.True(t, restbase.IsAPIError(err))

		code, ok := restbase.StatusCode(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("propagates transport failures without classification", func(t *testing.T) {
		res := newTestResource(t, true, &fakeTransport{err: errDialFailed})

		_, err := res.Call(context.Background(), "https://api.test.example.com/v1/sessions", "POST", nil)
		require.Error(t, err)
		assert.True(t, restbase.IsTransportError(err))
		assert.False(t, restbase.IsAPIError(err))
	})
}
