package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
	"github.com/averycrespi/polycalc/pkg/polynomial"
)

// BinaryOperationTool combines two polynomials with one arithmetic operation
type BinaryOperationTool struct {
	session     *session.Session
	logger      *zap.Logger
	name        string
	description string
	verb        string
	apply       func(left, right polynomial.Polynomial) (polynomial.Polynomial, error)
}

// infallible adapts an operation that cannot fail to the apply signature
func infallible(op func(left, right polynomial.Polynomial) polynomial.Polynomial) func(left, right polynomial.Polynomial) (polynomial.Polynomial, error) {
	return func(left, right polynomial.Polynomial) (polynomial.Polynomial, error) {
		return op(left, right), nil
	}
}

// NewAddPolynomialsTool creates a new add polynomials tool
func NewAddPolynomialsTool(sess *session.Session, logger *zap.Logger) *BinaryOperationTool {
	return &BinaryOperationTool{
		session:     sess,
		logger:      logger,
		name:        ToolAddPolynomials,
		description: "Add two polynomials and return the canonical sum",
		verb:        "Added",
		apply:       infallible(polynomial.Polynomial.Add),
	}
}

// NewSubtractPolynomialsTool creates a new subtract polynomials tool
func NewSubtractPolynomialsTool(sess *session.Session, logger *zap.Logger) *BinaryOperationTool {
	return &BinaryOperationTool{
		session:     sess,
		logger:      logger,
		name:        ToolSubtractPolynomials,
		description: "Subtract the right polynomial from the left polynomial and return the canonical difference",
		verb:        "Subtracted",
		apply:       infallible(polynomial.Polynomial.Sub),
	}
}

// NewMultiplyPolynomialsTool creates a new multiply polynomials tool
func NewMultiplyPolynomialsTool(sess *session.Session, logger *zap.Logger) *BinaryOperationTool {
	return &BinaryOperationTool{
		session:     sess,
		logger:      logger,
		name:        ToolMultiplyPolynomials,
		description: "Multiply two polynomials and return the canonical product",
		verb:        "Multiplied",
		apply:       polynomial.Polynomial.Mul,
	}
}

// GetTool returns the MCP tool definition
func (t *BinaryOperationTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name,
		mcp.WithDescription(t.description),
		mcp.WithString("left", mcp.Required(), mcp.Description(polynomialDescription)),
		mcp.WithString("right", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *BinaryOperationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	leftInput, err := GetRequiredString(req, "left")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rightInput, err := GetRequiredString(req, "right")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	left, leftOperand, err := ResolveOperand(t.session, leftInput)
	if err != nil {
		return resolveError(t.logger, t.name, "left", err), nil
	}
	right, rightOperand, err := ResolveOperand(t.session, rightInput)
	if err != nil {
		return resolveError(t.logger, t.name, "right", err), nil
	}

	result, err := t.apply(left, right)
	if err != nil {
		t.logger.Debug("Binary operation failed", zap.String("tool", t.name), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply %s: %v", t.name, err)), nil
	}
	t.logger.Debug("Applied binary operation",
		zap.String("tool", t.name),
		zap.Stringer("left", left),
		zap.Stringer("right", right),
		zap.Stringer("result", result))

	toolResult := results.BinaryOperationToolResult{
		Message:   fmt.Sprintf("%s %s and %s.", t.verb, left, right),
		Arguments: results.BinaryOperationToolArgs{Left: leftInput, Right: rightInput},
		Left:      leftOperand,
		Right:     rightOperand,
		Result:    results.NewPolynomialResult(result),
	}
	return newJSONResult(t.logger, t.name, toolResult)
}
