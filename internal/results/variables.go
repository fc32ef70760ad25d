package results

// StorePolynomialToolResult represents the result of the store_polynomial tool
type StorePolynomialToolResult struct {
	Message   string                  `json:"message"`
	Arguments StorePolynomialToolArgs `json:"arguments"`
	Stored    Variable                `json:"stored"`
}

// StorePolynomialToolArgs represents the input arguments for the store_polynomial tool
type StorePolynomialToolArgs struct {
	Name       string `json:"name"`
	Polynomial string `json:"polynomial"`
}

// ListPolynomialsToolResult represents the result of the list_polynomials tool
type ListPolynomialsToolResult struct {
	Message   string     `json:"message"`
	Variables []Variable `json:"variables,omitempty"`
}

// Variable is a named polynomial held in the variable store
type Variable struct {
	Name       string           `json:"name"`
	Polynomial PolynomialResult `json:"polynomial"`
}
