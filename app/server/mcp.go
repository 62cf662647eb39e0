package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"relaxan/app/config"
	"relaxan/app/service/catalog"

	"github.com/elliotchance/pie/v2"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
	"github.com/samber/oops"
)

// MCPServer exposes the catalog matcher as an MCP tool so external
// assistants can query stock directly.
type MCPServer struct {
	cfg        *config.Config
	catalogSvc *catalog.Service
}

func NewMCP(di *do.Injector) (*MCPServer, error) {
	return &MCPServer{
		cfg:        do.MustInvoke[*config.Config](di),
		catalogSvc: do.MustInvoke[*catalog.Service](di),
	}, nil
}

func (m *MCPServer) Run(ctx context.Context) error {
	if m.cfg.MCP.Listen == "" {
		slog.Info("MCP server disabled")
		return nil
	}

	srv := mcpserver.NewMCPServer("relaxan-assistant", "1.0.0")

	searchTool := mcp.NewTool("catalog_search",
		mcp.WithDescription("Search the orthopedic goods catalog. All attributes are optional; string attributes match fuzzily, size matches exactly, price matches within 3 BYN."),
		mcp.WithString("name", mcp.Description("product name, e.g. гольфы")),
		mcp.WithString("color", mcp.Description("product color, e.g. черный")),
		mcp.WithString("size", mcp.Description("product size, e.g. 4")),
		mcp.WithString("compression_class", mcp.Description("compression class, e.g. I or II")),
		mcp.WithString("country", mcp.Description("country of origin, e.g. Чехия")),
		mcp.WithString("manufacturer", mcp.Description("manufacturer, e.g. Calze")),
		mcp.WithString("price", mcp.Description("target price in BYN, number only")),
	)
	srv.AddTool(searchTool, m.handleCatalogSearch)

	sse := mcpserver.NewSSEServer(srv)

	go func() {
		<-ctx.Done()
		_ = sse.Shutdown(context.Background())
	}()

	slog.Info("MCP server started", "listen", m.cfg.MCP.Listen)

	if err := sse.Start(m.cfg.MCP.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return oops.Errorf("mcp server failed: %w", err)
	}

	return nil
}

func (m *MCPServer) handleCatalogSearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	criteria := catalog.Criteria{
		Name:             request.GetString("name", ""),
		Color:            request.GetString("color", ""),
		Size:             request.GetString("size", ""),
		CompressionClass: request.GetString("compression_class", ""),
		Country:          request.GetString("country", ""),
		Manufacturer:     request.GetString("manufacturer", ""),
		Price:            request.GetString("price", ""),
	}

	matches := m.catalogSvc.Find(criteria)
	if len(matches) == 0 {
		return mcp.NewToolResultText("Товары не найдены."), nil
	}

	return mcp.NewToolResultText(strings.Join(pie.Map(matches, catalog.FormatProduct), "\n\n")), nil
}
