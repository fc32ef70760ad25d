package results

// ComparePolynomialsToolResult represents the result of the compare_polynomials tool
type ComparePolynomialsToolResult struct {
	Message   string                  `json:"message"`
	Arguments BinaryOperationToolArgs `json:"arguments"`
	Left      OperandResult           `json:"left"`
	Right     OperandResult           `json:"right"`
	Equal     bool                    `json:"equal"`
}
