// Package dispatch routes generated tool calls to the right table and verb,
// runs sanitisation, issues the single storage call for the request, and
// maps every outcome — success, validation failure, storage failure, panic —
// to a text result envelope. Nothing escapes Dispatch as an error or panic:
// the transport always gets a result.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/promptai/ims-mcp/internal/schema"
	"github.com/promptai/ims-mcp/internal/store"
	"github.com/promptai/ims-mcp/internal/toolgen"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Dispatcher holds the dispatch table built from the generated tools and
// the store operations are issued against. Read-only after New.
type Dispatcher struct {
	st    store.Store
	tools map[string]toolgen.GeneratedTool
}

// New builds a Dispatcher for the given generated tool set.
func New(st store.Store, tools []toolgen.GeneratedTool) *Dispatcher {
	m := make(map[string]toolgen.GeneratedTool, len(tools))
	for _, gt := range tools {
		m[gt.Tool.Name] = gt
	}
	return &Dispatcher{st: st, tools: m}
}

// Handler returns the mcp-go handler for one generated tool. The handler
// never returns a Go error; failures are error envelopes.
func (d *Dispatcher) Handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Dispatch(ctx, name, req.GetArguments()), nil
	}
}

// Dispatch executes one tool call to completion: lookup, id check where the
// verb needs one, sanitise, one storage round trip, respond.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	defer func() {
		if r := recover(); r != nil {
			result = mcp.NewToolResultError(fmt.Sprintf("Server error: %v", r))
		}
	}()

	gt, ok := d.tools[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown tool: %s", name))
	}
	if args == nil {
		args = map[string]any{}
	}

	switch gt.Operation {
	case toolgen.OpCreate:
		return d.create(ctx, gt.Table, args)
	case toolgen.OpList:
		return d.list(ctx, gt.Table, args)
	case toolgen.OpUpdate:
		return d.update(ctx, gt.Table, args)
	case toolgen.OpDelete:
		return d.delete(ctx, gt.Table, args)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown operation: %s", gt.Operation))
	}
}

func (d *Dispatcher) create(ctx context.Context, table schema.TableSchema, args map[string]any) *mcp.CallToolResult {
	data, err := schema.Sanitize(args, table, true)
	if err != nil {
		return mcp.NewToolResultError("Validation error: " + err.Error())
	}

	row, err := d.st.Insert(ctx, table.TableName, data)
	if err != nil {
		return mcp.NewToolResultError("Database error: " + err.Error())
	}
	return jsonResult(row)
}

func (d *Dispatcher) list(ctx context.Context, table schema.TableSchema, args map[string]any) *mcp.CallToolResult {
	limit := clamp(intArg(args, "limit", defaultLimit), 1, maxLimit)
	offset := intArg(args, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	p := store.ListParams{Offset: offset, Limit: limit}

	// Equality filters: any declared field present in the request, checked
	// by the field validator regardless of required-ness. Keys are walked
	// in sorted order so rejection picks the same field every time.
	fields := table.FieldMap()
	for _, key := range sortedKeys(args) {
		switch key {
		case "limit", "offset", "order_by", "search":
			continue
		}
		field, ok := fields[key]
		if !ok {
			continue
		}
		value := args[key]
		if value == nil {
			continue
		}
		if msg := schema.ValidateValue(value, field); msg != "" {
			return mcp.NewToolResultError("Filter error: " + msg)
		}
		p.Filters = append(p.Filters, store.Filter{Column: key, Value: value})
	}

	if s, ok := args["search"].(string); ok && s != "" && table.HasField("name") {
		p.Search = s
	}

	if raw, ok := args["order_by"].(string); ok && raw != "" {
		p.Descending = strings.HasPrefix(raw, "-")
		p.OrderBy = strings.TrimPrefix(raw, "-")
	} else {
		// Newest first by default.
		p.OrderBy = "created_at"
		p.Descending = true
	}

	rows, err := d.st.List(ctx, table.TableName, p)
	if err != nil {
		return mcp.NewToolResultError("Database error: " + err.Error())
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	return jsonResult(map[string]any{
		"count":  len(rows),
		"offset": offset,
		"limit":  limit,
		"data":   rows,
	})
}

func (d *Dispatcher) update(ctx context.Context, table schema.TableSchema, args map[string]any) *mcp.CallToolResult {
	id, ok := args["id"].(string)
	if !ok || !schema.IsUUID(id) {
		return mcp.NewToolResultError("Validation error: id must be a valid UUID")
	}

	data, err := schema.Sanitize(args, table, false)
	if err != nil {
		return mcp.NewToolResultError("Validation error: " + err.Error())
	}
	if len(data) == 0 {
		return mcp.NewToolResultError("No fields to update")
	}

	row, err := d.st.Update(ctx, table.TableName, id, data)
	if err != nil {
		return mcp.NewToolResultError("Database error: " + err.Error())
	}
	return jsonResult(row)
}

func (d *Dispatcher) delete(ctx context.Context, table schema.TableSchema, args map[string]any) *mcp.CallToolResult {
	id, ok := args["id"].(string)
	if !ok || !schema.IsUUID(id) {
		return mcp.NewToolResultError("Validation error: id must be a valid UUID")
	}

	if err := d.st.Delete(ctx, table.TableName, id); err != nil {
		return mcp.NewToolResultError("Database error: " + err.Error())
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s %s", table.Singular, id))
}

// jsonResult serialises structured data as formatted text — the protocol
// surface is text-only, success or failure.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("Server error: " + err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

// intArg reads a numeric argument, tolerating the float64 a JSON decoder
// produces. Missing or non-numeric values fall back to def.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return def
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
