// Package dispatch routes tagged requests to search operations using
// the uniform request/response envelope.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fileseek/internal/engine"
	"fileseek/internal/types"
)

type (
	// Request is the uniform inbound envelope.
	Request struct {
		Action string          `json:"action"`
		Data   json.RawMessage `json:"data,omitempty"`
		ID     string          `json:"id,omitempty"`
	}

	// Response is the uniform outbound envelope. Data and Error are
	// both present on the wire; exactly one of them is null.
	Response struct {
		Success bool    `json:"success"`
		Data    any     `json:"data"`
		Error   *string `json:"error"`
		ID      string  `json:"id,omitempty"`
	}

	handlerFunc func(ctx context.Context, data json.RawMessage) (any, error)
)

// Dispatcher routes requests by action tag. The action table is built
// once at construction; there is no dynamic registration.
type Dispatcher struct {
	engine  *engine.Engine
	actions map[string]handlerFunc
	log     *slog.Logger
}

// New creates a Dispatcher over the given engine.
func New(eng *engine.Engine, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{engine: eng, log: log}
	d.actions = map[string]handlerFunc{
		types.ActionSearchFiles:       d.searchFiles,
		types.ActionSearchContent:     d.searchContent,
		types.ActionFindPattern:       d.findPattern,
		types.ActionSearchByExtension: d.searchByExtension,
	}
	return d
}

// Dispatch executes one request and always returns a well-formed
// response; errors are carried in the envelope, never raised across
// the boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Response {
	if req.Action == "" {
		return errorResponse(req.ID, "no action specified")
	}
	handler, ok := d.actions[req.Action]
	if !ok {
		return errorResponse(req.ID, fmt.Sprintf("unsupported action: %s", req.Action))
	}

	data, err := handler(ctx, req.Data)
	if err != nil {
		return errorResponse(req.ID, err.Error())
	}
	return Response{Success: true, Data: data, ID: req.ID}
}

func (d *Dispatcher) searchFiles(ctx context.Context, raw json.RawMessage) (any, error) {
	var params types.SearchFilesParams
	if err := decode(raw, &params); err != nil {
		return nil, err
	}
	matches, err := d.engine.SearchFiles(ctx, params)
	if err != nil {
		return nil, err
	}
	return matchData(matches, nil), nil
}

func (d *Dispatcher) searchContent(ctx context.Context, raw json.RawMessage) (any, error) {
	var params types.SearchContentParams
	if err := decode(raw, &params); err != nil {
		return nil, err
	}
	matches, skipped, err := d.engine.SearchContent(ctx, params)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []types.ContentMatch{}
	}
	return matchData(matches, skipped), nil
}

func (d *Dispatcher) findPattern(ctx context.Context, raw json.RawMessage) (any, error) {
	var params types.FindPatternParams
	if err := decode(raw, &params); err != nil {
		return nil, err
	}
	matches, skipped, err := d.engine.FindPattern(ctx, params)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []types.PatternMatch{}
	}
	return matchData(matches, skipped), nil
}

func (d *Dispatcher) searchByExtension(ctx context.Context, raw json.RawMessage) (any, error) {
	var params types.SearchByExtensionParams
	if err := decode(raw, &params); err != nil {
		return nil, err
	}
	matches, err := d.engine.SearchByExtension(ctx, params)
	if err != nil {
		return nil, err
	}
	return matchData(matches, nil), nil
}

func decode(raw json.RawMessage, params any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, params); err != nil {
		return fmt.Errorf("invalid request data: %w", err)
	}
	return nil
}

// matchData shapes the response payload: matches always, skipped-file
// diagnostics only when any file was dropped.
func matchData(matches any, skipped []types.Skip) map[string]any {
	data := map[string]any{"matches": matches}
	if len(skipped) > 0 {
		data["skipped"] = skipped
	}
	return data
}

func errorResponse(id, message string) Response {
	return Response{Success: false, Error: &message, ID: id}
}
