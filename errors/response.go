package errors

import (
	"encoding/json"

	"github.com/kbukum/ndex-go/model"
)

// Payload is the JSON error body returned by the NDEx server.
type Payload struct {
	ErrorCode   ErrorCode       `json:"errorCode"`
	Message     string          `json:"message,omitempty"`
	Description string          `json:"description,omitempty"`
	StackTrace  string          `json:"stackTrace,omitempty"`
	ThreadID    string          `json:"threadId,omitempty"`
	TimeStamp   model.Timestamp `json:"timeStamp"`
}

// Error returns the server message, falling back to the description.
func (p *Payload) Error() string {
	if p.Message != "" {
		return p.Message
	}
	return p.Description
}

// ParsePayload decodes an NDEx error body.
func ParsePayload(body []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// NewPayload builds the payload the server would send for code and message.
func NewPayload(code ErrorCode, message string) *Payload {
	return &Payload{ErrorCode: code, Message: message, Description: message}
}
