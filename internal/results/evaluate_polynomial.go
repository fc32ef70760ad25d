package results

// EvaluatePolynomialToolResult represents the result of the evaluate_polynomial tool
type EvaluatePolynomialToolResult struct {
	Message   string                     `json:"message"`
	Arguments EvaluatePolynomialToolArgs `json:"arguments"`
	Operand   OperandResult              `json:"operand"`
	Value     float64                    `json:"value"`
}

// EvaluatePolynomialToolArgs represents the input arguments for the evaluate_polynomial tool
type EvaluatePolynomialToolArgs struct {
	Polynomial string  `json:"polynomial"`
	X          float64 `json:"x"`
}
