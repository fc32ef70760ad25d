package results

// DifferentiatePolynomialToolResult represents the result of the differentiate_polynomial tool
type DifferentiatePolynomialToolResult struct {
	Message   string                          `json:"message"`
	Arguments DifferentiatePolynomialToolArgs `json:"arguments"`
	Operand   OperandResult                   `json:"operand"`
	Result    PolynomialResult                `json:"result"`
}

// DifferentiatePolynomialToolArgs represents the input arguments for the differentiate_polynomial tool
type DifferentiatePolynomialToolArgs struct {
	Polynomial string `json:"polynomial"`
}
