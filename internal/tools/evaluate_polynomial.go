package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
)

// EvaluatePolynomialTool handles evaluation requests
type EvaluatePolynomialTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewEvaluatePolynomialTool creates a new evaluate polynomial tool
func NewEvaluatePolynomialTool(sess *session.Session, logger *zap.Logger) *EvaluatePolynomialTool {
	return &EvaluatePolynomialTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *EvaluatePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluatePolynomial,
		mcp.WithDescription("Evaluate a polynomial at a given value of x"),
		mcp.WithString("polynomial", mcp.Required(), mcp.Description(polynomialDescription)),
		mcp.WithNumber("x", mcp.Required(), mcp.Description(numberDescription)),
	)
}

// Handle processes the tool request
func (t *EvaluatePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := GetRequiredString(req, "polynomial")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	x, err := GetRequiredNumber(req, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, operand, err := ResolveOperand(t.session, input)
	if err != nil {
		return resolveError(t.logger, ToolEvaluatePolynomial, "polynomial", err), nil
	}

	value := p.Eval(x)
	xText := strconv.FormatFloat(x, 'g', -1, 64)

	// JSON has no representation for NaN or infinities
	if !isFinite(value) {
		return mcp.NewToolResultError(fmt.Sprintf("%s evaluated at x = %s is not a finite number", p, xText)), nil
	}

	toolResult := results.EvaluatePolynomialToolResult{
		Message:   fmt.Sprintf("Evaluated %s at x = %s.", p, xText),
		Arguments: results.EvaluatePolynomialToolArgs{Polynomial: input, X: x},
		Operand:   operand,
		Value:     value,
	}
	return newJSONResult(t.logger, ToolEvaluatePolynomial, toolResult)
}
