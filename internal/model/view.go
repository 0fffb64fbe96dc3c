package model

import "fmt"

// CaseView is a case as presented to readers, with every step merged
// against its empty template.
type CaseView struct {
	Case
	StepData [StepCount]map[string]any `json:"step_data"`
}

// NewCaseView renders c for readers.
func NewCaseView(c Case) (CaseView, error) {
	v := CaseView{Case: c}
	for i := range c.Steps {
		n := StepNumber(i + 1)
		data, err := MergeStepDefaults(n, c.Steps[i])
		if err != nil {
			return CaseView{}, fmt.Errorf("failed to render step %d: %w", n, err)
		}
		v.StepData[i] = data
	}
	return v, nil
}
