package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeStepDefaults(t *testing.T) {
	tests := []struct {
		name    string
		step    StepNumber
		payload json.RawMessage
		check   func(t *testing.T, got map[string]any)
		wantErr bool
	}{
		{
			name: "empty payload yields template",
			step: 1,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "", got["fullName"])
				assert.Contains(t, got, "dateOfBirth")
			},
		},
		{
			name:    "stored keys win",
			step:    3,
			payload: json.RawMessage(`{"fullName":"Jane","extra":1}`),
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "Jane", got["fullName"])
				assert.Equal(t, float64(1), got["extra"])
				assert.Equal(t, "", got["address"])
			},
		},
		{
			name:    "null payload yields template",
			step:    7,
			payload: json.RawMessage(`null`),
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, []any{}, got["children"])
			},
		},
		{
			name:    "malformed payload",
			step:    2,
			payload: json.RawMessage(`[1,2]`),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeStepDefaults(tt.step, tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestStepTemplate_FreshCopy(t *testing.T) {
	a := StepTemplate(5)
	a["properties"] = "changed"

	b := StepTemplate(5)
	assert.Equal(t, []any{}, b["properties"])
}
