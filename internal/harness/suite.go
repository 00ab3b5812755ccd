package harness

// SuiteResult summarizes a batch of scenario runs.
type SuiteResult struct {
	Total    int       `json:"total"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Results  []*Result `json:"results"`
	Failures []Failure `json:"failures,omitempty"`
}

// Failure names a failed scenario and why.
type Failure struct {
	Scenario string   `json:"scenario"`
	Errors   []string `json:"errors"`
}

// Pass reports whether every scenario passed.
func (s *SuiteResult) Pass() bool {
	return s.Failed == 0
}

// RunAll executes scenarios in order. It does not stop at the first
// failing scenario.
func (h *Harness) RunAll(scenarios []*Scenario) *SuiteResult {
	suite := &SuiteResult{Results: make([]*Result, 0, len(scenarios))}
	for _, s := range scenarios {
		r := h.Run(s)
		suite.Total++
		suite.Results = append(suite.Results, r)
		if r.Pass {
			suite.Passed++
			continue
		}
		suite.Failed++
		suite.Failures = append(suite.Failures, Failure{Scenario: s.Name, Errors: r.Errors})
	}
	return suite
}
