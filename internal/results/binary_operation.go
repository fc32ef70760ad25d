package results

// BinaryOperationToolResult represents the result of the add, subtract and multiply tools
type BinaryOperationToolResult struct {
	Message   string                  `json:"message"`
	Arguments BinaryOperationToolArgs `json:"arguments"`
	Left      OperandResult           `json:"left"`
	Right     OperandResult           `json:"right"`
	Result    PolynomialResult        `json:"result"`
}

// BinaryOperationToolArgs represents the input arguments for a binary operation tool
type BinaryOperationToolArgs struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}
