package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
)

// DifferentiatePolynomialTool handles derivative requests
type DifferentiatePolynomialTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewDifferentiatePolynomialTool creates a new differentiate polynomial tool
func NewDifferentiatePolynomialTool(sess *session.Session, logger *zap.Logger) *DifferentiatePolynomialTool {
	return &DifferentiatePolynomialTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *DifferentiatePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolDifferentiatePolynomial,
		mcp.WithDescription("Return the first derivative of a polynomial with respect to x"),
		mcp.WithString("polynomial", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *DifferentiatePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := GetRequiredString(req, "polynomial")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, operand, err := ResolveOperand(t.session, input)
	if err != nil {
		return resolveError(t.logger, ToolDifferentiatePolynomial, "polynomial", err), nil
	}

	toolResult := results.DifferentiatePolynomialToolResult{
		Message:   fmt.Sprintf("Differentiated %s.", p),
		Arguments: results.DifferentiatePolynomialToolArgs{Polynomial: input},
		Operand:   operand,
		Result:    results.NewPolynomialResult(p.Derivative()),
	}
	return newJSONResult(t.logger, ToolDifferentiatePolynomial, toolResult)
}
