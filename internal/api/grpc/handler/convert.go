package handler

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/casekeeper-server/internal/apierrors"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// toStruct converts a JSON-encodable value into a Struct through its JSON form,
// so responses use the same field names as the stored documents.
func toStruct(v map[string]any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build response: %w", err)
	}
	return s, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func uuidField(req *structpb.Struct, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringField(req, name))
	if err != nil {
		return uuid.Nil, apierrors.NewErrInvalidField(name)
	}
	return id, nil
}

// partyField parses an optional party name. An absent field means the caller's own party.
func partyField(req *structpb.Struct, name string) (model.Party, error) {
	v := stringField(req, name)
	if v == "" {
		return model.PartyNone, nil
	}
	p, ok := model.ParseParty(v)
	if !ok {
		return model.PartyNone, apierrors.NewErrInvalidField(name)
	}
	return p, nil
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, apierrors.NewErrInvalidField(name)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, apierrors.NewErrInvalidField(name)
	}
	return int(n.NumberValue), nil
}

// rawField returns the JSON encoding of a field, or nil when it is absent.
func rawField(req *structpb.Struct, name string) (json.RawMessage, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, apierrors.NewErrInvalidField(name)
	}
	return raw, nil
}

// listField returns the JSON encoding of every element of a list field, or nil
// when the field is absent or not a list.
func listField(req *structpb.Struct, name string) ([]json.RawMessage, error) {
	list := req.GetFields()[name].GetListValue()
	if list == nil {
		return nil, nil
	}

	out := make([]json.RawMessage, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		raw, err := v.MarshalJSON()
		if err != nil {
			return nil, apierrors.NewErrInvalidField(name)
		}
		out = append(out, raw)
	}
	return out, nil
}
