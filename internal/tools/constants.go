package tools

// Tool names
const (
	ToolParsePolynomial         = "parse_polynomial"
	ToolAddPolynomials          = "add_polynomials"
	ToolSubtractPolynomials     = "subtract_polynomials"
	ToolMultiplyPolynomials     = "multiply_polynomials"
	ToolScalePolynomial         = "scale_polynomial"
	ToolDifferentiatePolynomial = "differentiate_polynomial"
	ToolEvaluatePolynomial      = "evaluate_polynomial"
	ToolComparePolynomials      = "compare_polynomials"
	ToolStorePolynomial         = "store_polynomial"
	ToolListPolynomials         = "list_polynomials"
)

// Shared parameter descriptions
const (
	polynomialDescription = "Polynomial in x such as \"3x^2 - 2x + 1\", a stored variable name, or an assignment \"name = expression\""
	numberDescription     = "A number, given either as a JSON number or as a numeric string"
)
