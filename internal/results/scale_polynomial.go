package results

// ScalePolynomialToolResult represents the result of the scale_polynomial tool
type ScalePolynomialToolResult struct {
	Message   string                  `json:"message"`
	Arguments ScalePolynomialToolArgs `json:"arguments"`
	Operand   OperandResult           `json:"operand"`
	Result    PolynomialResult        `json:"result"`
}

// ScalePolynomialToolArgs represents the input arguments for the scale_polynomial tool
type ScalePolynomialToolArgs struct {
	Factor     float64 `json:"factor"`
	Polynomial string  `json:"polynomial"`
}
