package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
)

// ComparePolynomialsTool handles equality check requests
type ComparePolynomialsTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewComparePolynomialsTool creates a new compare polynomials tool
func NewComparePolynomialsTool(sess *session.Session, logger *zap.Logger) *ComparePolynomialsTool {
	return &ComparePolynomialsTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ComparePolynomialsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolComparePolynomials,
		mcp.WithDescription("Check whether two polynomials are equal, comparing coefficients within a tolerance of 1e-7"),
		mcp.WithString("left", mcp.Required(), mcp.Description(polynomialDescription)),
		mcp.WithString("right", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *ComparePolynomialsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
		return resolveError(t.logger, ToolComparePolynomials, "left", err), nil
	}
	right, rightOperand, err := ResolveOperand(t.session, rightInput)
	if err != nil {
		return resolveError(t.logger, ToolComparePolynomials, "right", err), nil
	}

	toolResult := results.ComparePolynomialsToolResult{
		Arguments: results.BinaryOperationToolArgs{Left: leftInput, Right: rightInput},
		Left:      leftOperand,
		Right:     rightOperand,
		Equal:     left.Equal(right),
	}
	if toolResult.Equal {
		toolResult.Message = fmt.Sprintf("%s and %s are equal.", left, right)
	} else {
		toolResult.Message = fmt.Sprintf("%s and %s are not equal.", left, right)
	}
	return newJSONResult(t.logger, ToolComparePolynomials, toolResult)
}
