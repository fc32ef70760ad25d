package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
)

// StorePolynomialTool handles requests to save a polynomial under a name
type StorePolynomialTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewStorePolynomialTool creates a new store polynomial tool
func NewStorePolynomialTool(sess *session.Session, logger *zap.Logger) *StorePolynomialTool {
	return &StorePolynomialTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *StorePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolStorePolynomial,
		mcp.WithDescription("Store a polynomial under a variable name so later requests can refer to it by name. "+
			"Names are 1 to 10 ASCII letters by default. Storing under an existing name replaces its value."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Variable name")),
		mcp.WithString("polynomial", mcp.Required(), mcp.Description(polynomialDescription)),
	)
}

// Handle processes the tool request
func (t *StorePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := GetRequiredString(req, "name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	input, err := GetRequiredString(req, "polynomial")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, _, err := ResolveOperand(t.session, input)
	if err != nil {
		return resolveError(t.logger, ToolStorePolynomial, "polynomial", err), nil
	}
	if err := t.session.Store(name, p); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to store polynomial: %v", err)), nil
	}
	t.logger.Info("Stored polynomial", zap.String("name", name), zap.Stringer("polynomial", p))

	toolResult := results.StorePolynomialToolResult{
		Message:   fmt.Sprintf("Stored %s as %s.", p, name),
		Arguments: results.StorePolynomialToolArgs{Name: name, Polynomial: input},
		Stored: results.Variable{
			Name:       name,
			Polynomial: results.NewPolynomialResult(p),
		},
	}
	return newJSONResult(t.logger, ToolStorePolynomial, toolResult)
}

// ListPolynomialsTool handles requests to list stored variables
type ListPolynomialsTool struct {
	session *session.Session
	logger  *zap.Logger
}

// NewListPolynomialsTool creates a new list polynomials tool
func NewListPolynomialsTool(sess *session.Session, logger *zap.Logger) *ListPolynomialsTool {
	return &ListPolynomialsTool{
		session: sess,
		logger:  logger,
	}
}

// GetTool returns the MCP tool definition
func (t *ListPolynomialsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListPolynomials,
		mcp.WithDescription("List every stored polynomial variable, sorted by name"),
	)
}

// Handle processes the tool request
func (t *ListPolynomialsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	toolResult := results.ListPolynomialsToolResult{}
	for name, p := range t.session.Variables() {
		toolResult.Variables = append(toolResult.Variables, results.Variable{
			Name:       name,
			Polynomial: results.NewPolynomialResult(p),
		})
	}

	if len(toolResult.Variables) == 0 {
		toolResult.Message = "No polynomials are stored. Use store_polynomial or an assignment such as \"p = x^2\" to create one."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d stored polynomials.", len(toolResult.Variables))
	}
	return newJSONResult(t.logger, ToolListPolynomials, toolResult)
}
