// Package mcp exposes attention's file-backed state over the Model
// Context Protocol. Only what lives on disk is served: the schedule from
// the config file and the history log. Session state is process-local to
// a running overlay and is deliberately not reachable from here.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/avdx/attention/internal/config"
	"github.com/avdx/attention/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server     *server.MCPServer
	configPath string
	history    ports.HistoryStore
	now        func() time.Time
}

// NewServer creates a new MCP server instance.
func NewServer(configPath string, history ports.HistoryStore) *Server {
	s := &Server{
		configPath: configPath,
		history:    history,
		now:        time.Now,
	}

	s.server = server.NewMCPServer(
		"attention",
		"1.0.0",
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_schedule_state",
			mcp.WithDescription("Get the configured break schedule and whether a break window is active right now"),
		),
		s.handleGetScheduleState,
	)

	historyTool := mcp.NewTool(
		"get_history",
		mcp.WithDescription("Get recorded task events (start/pause/resume/stop) for one day"),
		mcp.WithString(
			"date",
			mcp.Description("Day to fetch in YYYY-MM-DD form (default: today)"),
		),
	)
	s.server.AddTool(historyTool, s.handleGetHistory)

	s.server.AddTool(
		mcp.NewTool(
			"get_config",
			mcp.WithDescription("Get the normalized attention configuration"),
		),
		s.handleGetConfig,
	)
}

// Start begins serving MCP requests over stdio. Blocks until the client
// disconnects.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// handleGetScheduleState handles the get_schedule_state tool.
func (s *Server) handleGetScheduleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := config.Load(s.configPath)
	schedule := cfg.DomainSchedule()
	now := s.now()

	windows := make([]map[string]interface{}, 0, len(schedule))
	for _, entry := range schedule {
		windows = append(windows, map[string]interface{}{
			"start": entry.Start.String(),
			"end":   entry.End.String(),
			"label": entry.Label,
		})
	}

	result := map[string]interface{}{
		"now":          now.Format("15:04:05"),
		"break_active": false,
		"schedule":     windows,
	}

	if match := schedule.Evaluate(now); match != nil {
		result["break_active"] = true
		result["active_window"] = map[string]interface{}{
			"start":             match.Entry.Start.String(),
			"end":               match.Entry.End.String(),
			"label":             match.Entry.Label,
			"remaining_seconds": int(match.Entry.Remaining(now).Seconds()),
		}
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedule state: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetHistory handles the get_history tool.
func (s *Server) handleGetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day := request.GetString("date", "")
	if day == "" {
		day = s.now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", day)), nil
	}

	records, err := s.history.Day(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	events := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		event := map[string]interface{}{
			"timestamp": r.Timestamp,
			"event":     string(r.Event),
			"title":     r.Title,
		}
		if r.Branch != "" {
			event["branch"] = r.Branch
		}
		events = append(events, event)
	}

	result := map[string]interface{}{
		"date":   day,
		"events": events,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetConfig handles the get_config tool.
func (s *Server) handleGetConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := config.Load(s.configPath)

	result := map[string]interface{}{
		"message":       cfg.Message,
		"font_family":   cfg.FontFamily,
		"font_size":     cfg.FontSize,
		"text_color":    cfg.TextColor,
		"outline_color": cfg.OutlineColor,
		"transparency":  cfg.Transparency,
		"language":      cfg.Language,
		"schedule":      cfg.Schedule,
	}
	if cfg.X != nil {
		result["x"] = *cfg.X
	}
	if cfg.Y != nil {
		result["y"] = *cfg.Y
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
