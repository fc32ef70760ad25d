package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
)

// ParsePolynomialTool handles parse polynomial requests
type ParsePolynomialTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewParsePolynomialTool creates a new parse polynomial tool
func NewParsePolynomialTool(sess *session.Session, logger *zap.Logger) *ParsePolynomialTool {
	return &ParsePolynomialTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ParsePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolParsePolynomial,
		mcp.WithDescription("Parse a polynomial expression and return its canonical form, with terms ordered by descending degree"),
		mcp.WithString("expression", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *ParsePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := GetRequiredString(req, "expression")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	_, operand, err := ResolveOperand(t.session, expression)
	if err != nil {
		return resolveError(t.logger, ToolParsePolynomial, "expression", err), nil
	}

	toolResult := results.ParsePolynomialToolResult{
		Message:   fmt.Sprintf("Resolved %s to %s.", operand.Source, operand.Polynomial.Text),
		Arguments: results.ParsePolynomialToolArgs{Expression: expression},
		Result:    operand,
	}
	return newJSONResult(t.logger, ToolParsePolynomial, toolResult)
}
