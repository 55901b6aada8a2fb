package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
)

// NewRequest creates a body-less HTTP request for testing. No endpoint
// accepts a request body.
func NewRequest(method, path string) *http.Request {
	r := httptest.NewRequest(method, path, nil)
	r.Header.Set("Accept", "application/json")
	return r
}

// Envelope is the decoded form of a success or error response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   Envelope
}

// RecordHTTPResponse decodes the recorded response envelope.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	var body Envelope
	_ = json.NewDecoder(result.Body).Decode(&body)

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
	}
}

// DecodeData unmarshals the envelope's data field into v.
func (r RecordResponse) DecodeData(v any) error {
	return json.Unmarshal(r.Body.Data, v)
}
