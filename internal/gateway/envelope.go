package gateway

import (
	"encoding/json"

	"backoffice/internal/domain"
)

// The backend answers in two shapes: {"status":"success","data":T} and a bare
// T. Both must be accepted transparently; anything else is malformed.

type successEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// unwrap returns the payload portion of a success body.
func unwrap(body []byte) json.RawMessage {
	var env successEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status == "success" && len(env.Data) > 0 {
		return env.Data
	}
	return body
}

func decodeList(body []byte) ([]domain.Record, error) {
	payload := unwrap(body)
	var records []domain.Record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, domain.MalformedResponseError{Msg: "expected a record array"}
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}

func decodeRecord(body []byte) (domain.Record, error) {
	if len(body) == 0 {
		// some endpoints answer an empty body on mutation
		return domain.Record{}, nil
	}
	payload := unwrap(body)
	var record domain.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, domain.MalformedResponseError{Msg: "expected a record object"}
	}
	return record, nil
}
