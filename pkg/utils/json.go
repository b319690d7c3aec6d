package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// DecodePayload converts a loosely decoded message payload, usually a
// map[string]any, into T.
func DecodePayload[T any](payload any) (T, error) {
	var result T
	if payload == nil {
		return result, errors.New("empty payload")
	}
	data, err := jsoniter.Marshal(payload)
	if err != nil {
		return result, errors.WithMessage(err, "marshal payload")
	}
	if err := jsoniter.Unmarshal(data, &result); err != nil {
		return result, errors.WithMessage(err, "unmarshal payload")
	}
	return result, nil
}
