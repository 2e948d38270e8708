package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var errNotObject = errors.New("payload is not a JSON object")

// Interpret maps a bank's HTTP status and body to a Result.
//
// 200 and 201 are success and the body is ignored. A 400 body is a JSON object
// of field name to list of messages; the detail is every "field: msg1, msg2"
// block in the order the bank sent them. Any other status is unavailable and
// the body is not looked at.
func Interpret(statusCode int, payload []byte) Result {
	switch statusCode {
	case http.StatusOK, http.StatusCreated:
		return Result{Status: StatusSuccess, Detail: DetailSuccess}
	case http.StatusBadRequest:
		return interpretValidation(payload)
	default:
		return Result{Status: StatusUnavailable, Detail: DetailUnavailable}
	}
}

func interpretValidation(payload []byte) Result {
	fields, err := parseFieldErrors(payload)
	if err != nil {
		detail := strings.TrimSpace(string(payload))
		if detail == "" {
			detail = DetailBadRequest
		}
		return Result{Status: StatusValidationError, Detail: detail}
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(strings.Join(f.Messages, ", "))
	}
	return Result{Status: StatusValidationError, Detail: b.String(), Fields: fields}
}

// parseFieldErrors walks the object token by token since a Go map would lose
// the key order.
func parseFieldErrors(payload []byte) ([]FieldError, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var fields []FieldError
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields = append(fields, FieldError{Field: key, Messages: messages(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// messages flattens a field value. Banks normally send a list of strings but a
// bare string or nested values are kept rather than dropped.
func messages(raw json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{compact(raw)}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if err := json.Unmarshal(item, &single); err == nil {
			out = append(out, single)
			continue
		}
		out = append(out, compact(item))
	}
	return out
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
