package model

import (
	"encoding/json"
	"fmt"
)

// stepTemplates build the empty shape of each step so that clients can
// render a complete form before any data exists.
var stepTemplates = [StepCount]func() map[string]any{
	func() map[string]any { return personalTemplate() },
	func() map[string]any { return financesTemplate() },
	func() map[string]any { return personalTemplate() },
	func() map[string]any { return financesTemplate() },
	func() map[string]any {
		return map[string]any{
			"properties":   []any{},
			"vehicles":     []any{},
			"bankAccounts": []any{},
			"investments":  []any{},
		}
	},
	func() map[string]any {
		return map[string]any{
			"debts":       []any{},
			"liabilities": []any{},
		}
	},
	func() map[string]any {
		return map[string]any{
			"children":        []any{},
			"terms":           "",
			"additionalNotes": "",
		}
	},
}

func personalTemplate() map[string]any {
	return map[string]any{
		"fullName":    "",
		"dateOfBirth": "",
		"address":     "",
		"occupation":  "",
		"phone":       "",
	}
}

func financesTemplate() map[string]any {
	return map[string]any{
		"income":         []any{},
		"assets":         []any{},
		"superannuation": []any{},
	}
}

// StepTemplate returns a fresh empty template for step n.
func StepTemplate(n StepNumber) map[string]any {
	return stepTemplates[n.index()]()
}

// MergeStepDefaults overlays a stored payload on the empty template of step n.
// Keys present in the payload win; missing top-level keys take template values.
func MergeStepDefaults(n StepNumber, payload json.RawMessage) (map[string]any, error) {
	merged := StepTemplate(n)
	if len(payload) == 0 || string(payload) == "null" {
		return merged, nil
	}

	var stored map[string]any
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode step %d payload: %w", n, err)
	}
	for k, v := range stored {
		merged[k] = v
	}

	return merged, nil
}
