package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sweetpay/restbase/internal/transport"
	"github.com/sweetpay/restbase/pkg/restbase"
	"github.com/sweetpay/restbase/pkg/sweetpay"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired       = errors.New("API token is required (use --token or run 'sweetpay login')")
	ErrNATSURLRequired     = errors.New("NATS URL is required for the nats transport (use --nats-url)")
	ErrUnknownTransport    = errors.New("unknown transport (expected http or nats)")
	ErrInvalidFieldFormat  = errors.New("invalid field format, expected key=value")
	ErrNoFieldsSpecified   = errors.New("at least one key=value field is required")
	ErrSessionIDRequired   = errors.New("session ID is required")
	ErrSubscriptionIDBlank = errors.New("subscription ID is required")
)

// newClient builds a Sweetpay client from the active viper configuration.
func newClient() (*sweetpay.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenRequired
	}

	tr, err := newTransport()
	if err != nil {
		return nil, err
	}

	client, err := sweetpay.New(sweetpay.Config{
		Token:     token,
		Test:      viper.GetBool("test"),
		Timeout:   viper.GetDuration("timeout"),
		Transport: tr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// newTransport resolves the configured transport.
func newTransport() (restbase.Transport, error) {
	switch viper.GetString("transport") {
	case "", "http":
		return transport.NewHTTP(), nil
	case "nats":
		natsURL := viper.GetString("nats-url")
		if natsURL == "" {
			return nil, ErrNATSURLRequired
		}

		conn, err := nats.Connect(natsURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}

		return transport.NewNATS(conn, viper.GetString("nats-subject")), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, viper.GetString("transport"))
	}
}

// parseFields parses key=value arguments into a request payload. Values that
// parse as JSON keep their parsed type; everything else stays a string.
func parseFields(args []string) (map[string]interface{}, error) {
	if len(args) == 0 {
		return nil, ErrNoFieldsSpecified
	}

	fields := make(map[string]interface{}, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFieldFormat, arg)
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			fields[key] = parsed
		} else {
			fields[key] = value
		}
	}

	return fields, nil
}

// renderData writes data to stdout in the configured output format.
func renderData(data interface{}) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(data)
	default:
		return renderTable(data)
	}
}

// renderTable renders a decoded payload as a Property/Value table. Payloads
// that are not objects fall back to indented JSON.
func renderTable(data interface{}) error {
	payload, ok := data.(map[string]interface{})
	if !ok {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, formatValue(payload[key]))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatValue formats one table cell. Nested structures are JSON-encoded.
func formatValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case map[string]interface{}, []interface{}:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(encoded)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
