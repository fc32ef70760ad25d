package results

// ParsePolynomialToolResult represents the result of the parse_polynomial tool
type ParsePolynomialToolResult struct {
	Message   string                  `json:"message"`
	Arguments ParsePolynomialToolArgs `json:"arguments"`
	Result    OperandResult           `json:"result"`
}

// ParsePolynomialToolArgs represents the input arguments for the parse_polynomial tool
type ParsePolynomialToolArgs struct {
	Expression string `json:"expression"`
}
