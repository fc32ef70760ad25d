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

// ScalePolynomialTool handles multiply-by-constant requests
type ScalePolynomialTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewScalePolynomialTool creates a new scale polynomial tool
func NewScalePolynomialTool(sess *session.Session, logger *zap.Logger) *ScalePolynomialTool {
	return &ScalePolynomialTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ScalePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolScalePolynomial,
		mcp.WithDescription("Multiply every coefficient of a polynomial by a constant factor"),
		mcp.WithNumber("factor", mcp.Required(), mcp.Description(numberDescription)),
		mcp.WithString("polynomial", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *ScalePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	factor, err := GetRequiredNumber(req, "factor")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input, err := GetRequiredString(req, "polynomial")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, operand, err := ResolveOperand(t.session, input)
	if err != nil {
		return resolveError(t.logger, ToolScalePolynomial, "polynomial", err), nil
	}

	result := p.Scale(factor)
	toolResult := results.ScalePolynomialToolResult{
		Message:   fmt.Sprintf("Multiplied %s by %s.", p, strconv.FormatFloat(factor, 'g', -1, 64)),
		Arguments: results.ScalePolynomialToolArgs{Factor: factor, Polynomial: input},
		Operand:   operand,
		Result:    results.NewPolynomialResult(result),
	}
	return newJSONResult(t.logger, ToolScalePolynomial, toolResult)
}
