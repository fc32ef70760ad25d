package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/results"
	"github.com/averycrespi/polycalc/internal/session"
	"github.com/averycrespi/polycalc/pkg/polynomial"
)

// Tool is implemented by every calculator tool exposed over MCP
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every tool, backed by the same session
func All(sess *session.Session, logger *zap.Logger) []Tool {
	return []Tool{
		NewParsePolynomialTool(sess, logger),
		NewAddPolynomialsTool(sess, logger),
		NewSubtractPolynomialsTool(sess, logger),
		NewMultiplyPolynomialsTool(sess, logger),
		NewScalePolynomialTool(sess, logger),
		NewDifferentiatePolynomialTool(sess, logger),
		NewEvaluatePolynomialTool(sess, logger),
		NewComparePolynomialsTool(sess, logger),
		NewStorePolynomialTool(sess, logger),
		NewListPolynomialsTool(sess, logger),
	}
}

// GetRequiredString reads a non-blank string argument
func GetRequiredString(req mcp.CallToolRequest, key string) (string, error) {
	value := strings.TrimSpace(mcp.ParseString(req, key, ""))
	if value == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return value, nil
}

// GetRequiredNumber reads a finite numeric argument given as a JSON number or a numeric string
func GetRequiredNumber(req mcp.CallToolRequest, key string) (float64, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	if raw == nil || raw == "" {
		return 0, fmt.Errorf("%s parameter is required", key)
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	if !isFinite(value) {
		return 0, fmt.Errorf("%s must be finite", key)
	}
	return value, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ResolveOperand resolves a polynomial argument through the session
func ResolveOperand(sess *session.Session, input string) (polynomial.Polynomial, results.OperandResult, error) {
	r, err := sess.Resolve(input)
	if err != nil {
		return polynomial.Polynomial{}, results.OperandResult{}, err
	}
	return r.Polynomial, results.OperandResult{
		Input:      input,
		Source:     string(r.Kind),
		Name:       r.Name,
		Polynomial: results.NewPolynomialResult(r.Polynomial),
	}, nil
}

// resolveError turns a resolution failure into a tool-result error
func resolveError(logger *zap.Logger, tool, key string, err error) *mcp.CallToolResult {
	logger.Debug("Failed to resolve operand",
		zap.String("tool", tool),
		zap.String("argument", key),
		zap.Error(err))
	if session.IsUnresolved(err) {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid %s: %v", key, err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve %s: %v", key, err))
}

// newJSONResult marshals a tool result into indented JSON text
func newJSONResult(logger *zap.Logger, tool string, v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Warn("Failed to marshal tool result", zap.String("tool", tool), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
