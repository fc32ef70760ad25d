package server

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/session"
	"github.com/averycrespi/polycalc/internal/tools"
	"github.com/averycrespi/polycalc/pkg/project"
	"github.com/averycrespi/polycalc/pkg/types"
)

var _ types.Server = &PolycalcServer{}

// PolycalcServer exposes the calculator as MCP tools
type PolycalcServer struct {
	mcpServer *server.MCPServer
	session   *session.Session
	logger    *zap.Logger
}

// NewPolycalcServer creates a new MCP server backed by sess
func NewPolycalcServer(sess *session.Session, logger *zap.Logger) *PolycalcServer {
	s := &PolycalcServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		session:   sess,
		logger:    logger,
	}
	s.registerTools()
	return s
}

func (s *PolycalcServer) registerTools() {
	for _, tool := range tools.All(s.session, s.logger) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

// Serve serves MCP over stdin and stdout until ctx is cancelled or stdin is closed
func (s *PolycalcServer) Serve(ctx context.Context) error {
	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Listen serves MCP over the given streams
func (s *PolycalcServer) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting MCP server",
		zap.String("name", project.Name),
		zap.String("version", project.Version),
		zap.Int("variables", s.session.Count()))

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(zap.NewStdLog(s.logger))

	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	s.logger.Info("MCP server stopped")
	return nil
}
