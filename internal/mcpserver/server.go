// Package mcpserver exposes the input cache as Model Context Protocol tools,
// so editors and agents can read puzzle inputs without handling the session.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"aochelper/internal/cache"
	"aochelper/internal/calendar"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "aochelper"
	Version = "0.3.0"
)

type dayArgs struct {
	Year int `json:"year" jsonschema:"puzzle year, 2015 or later"`
	Day  int `json:"day" jsonschema:"day of December, 1 to 25"`
}

type inputOutput struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Bytes int    `json:"bytes"`
	Input string `json:"input"`
}

type statusOutput struct {
	Year      int    `json:"year"`
	Day       int    `json:"day"`
	Unlocked  bool   `json:"unlocked"`
	Cached    bool   `json:"cached"`
	ReleaseAt string `json:"release_at"`
}

type handler struct {
	inputs *cache.Inputs
	now    func() time.Time
	log    zerolog.Logger
}

// New builds a server over inputs. now drives the unlock check in
// puzzle_status and may be nil.
func New(inputs *cache.Inputs, now func() time.Time, log zerolog.Logger) *mcp.Server {
	if now == nil {
		now = time.Now
	}
	h := &handler{inputs: inputs, now: now, log: log}

	s := mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_input",
		Description: "Return the raw puzzle input for a year and day, downloading and caching it on first use.",
	}, h.getInput)
	mcp.AddTool(s, &mcp.Tool{
		Name:        "puzzle_status",
		Description: "Report whether a puzzle day has unlocked and whether its input is cached locally.",
	}, h.status)
	return s
}

// Serve runs the server on stdin/stdout until ctx ends or the client disconnects.
func Serve(ctx context.Context, s *mcp.Server) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

func (h *handler) getInput(ctx context.Context, _ *mcp.CallToolRequest, args dayArgs) (*mcp.CallToolResult, inputOutput, error) {
	in, err := h.inputs.Get(ctx, cache.Key{Year: args.Year, Day: args.Day})
	if err != nil {
		h.log.Warn().Int("year", args.Year).Int("day", args.Day).Err(err).Msg("get_input failed")
		return nil, inputOutput{}, err
	}
	out := inputOutput{Year: args.Year, Day: args.Day, Bytes: len(in.Text), Input: in.Text}
	res := &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: in.Text}}}
	return res, out, nil
}

func (h *handler) status(_ context.Context, _ *mcp.CallToolRequest, args dayArgs) (*mcp.CallToolResult, statusOutput, error) {
	key := cache.Key{Year: args.Year, Day: args.Day}
	if err := key.Validate(); err != nil {
		return nil, statusOutput{}, err
	}
	cached, err := h.inputs.Cached(key)
	if err != nil {
		return nil, statusOutput{}, err
	}
	out := statusOutput{
		Year:      args.Year,
		Day:       args.Day,
		Unlocked:  calendar.Check(args.Year, args.Day, h.now()) == nil,
		Cached:    cached,
		ReleaseAt: calendar.ReleaseTime(args.Year, args.Day).Format(time.RFC3339),
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, statusOutput{}, fmt.Errorf("marshal status: %w", err)
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(b)}}}, out, nil
}
