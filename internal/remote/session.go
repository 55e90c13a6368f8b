package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/hcl"
	"github.com/vk/phisynth/internal/param"
	"github.com/vk/phisynth/internal/studio"
	"github.com/zishang520/engine.io/v2/types"
)

// MaxBatch caps the number of samples one run_batch request may render.
const MaxBatch = 1 << 20

// ResultSuffix is appended to a request event name to form its reply event.
const ResultSuffix = ":result"

// Events lists the request events a Session answers.
var Events = []string{
	"list_parameters", "get_link", "set_value", "set_link",
	"add_node", "remove_node", "bind", "run_batch", "snapshot",
}

var errUnknownEvent = errors.New("unknown event")

// Conn is the part of a socket.io client socket a Session needs.
type Conn interface {
	On(types.EventName, ...types.Listener) error
	Emit(ev string, args ...any) error
	Id() string
}

// Session answers editor events for one studio over one connection.
type Session struct {
	id     string
	studio *studio.Studio
	conn   Conn
	ctx    context.Context
	logger *slog.Logger
}

// NewSession returns a session with a fresh id. ctx is used for logging and
// for binds triggered by the editor.
func NewSession(ctx context.Context, st *studio.Studio, conn Conn) *Session {
	id := uuid.NewString()
	ctx = ctxlog.With(ctx, "session", id)
	return &Session{
		id:     id,
		studio: st,
		conn:   conn,
		ctx:    ctx,
		logger: ctxlog.FromContext(ctx),
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Attach registers a listener for every request event.
func (s *Session) Attach() error {
	for _, ev := range Events {
		err := s.conn.On(types.EventName(ev), func(args ...any) {
			reply := s.Handle(ev, args...)
			if err := s.conn.Emit(ev+ResultSuffix, reply); err != nil {
				s.logger.Error("Failed to emit reply.", "event", ev, "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to register %q listener: %w", ev, err)
		}
	}
	s.logger.Debug("Session attached.", "sid", s.conn.Id(), "events", len(Events))
	return nil
}

// Handle answers one request and returns the reply payload.
func (s *Session) Handle(event string, args ...any) map[string]any {
	s.logger.Debug("Editor request.", "event", event)
	reply, err := s.dispatch(event, args)
	if err != nil {
		s.logger.Warn("Editor request failed.", "event", event, "error", err)
		return map[string]any{"ok": false, "error": err.Error()}
	}
	if reply == nil {
		reply = map[string]any{}
	}
	reply["ok"] = true
	return reply
}

type request struct {
	Name    string   `json:"name"`
	Target  string   `json:"target"`
	Type    string   `json:"type"`
	Value   *float32 `json:"value"`
	Samples int      `json:"samples"`
}

func (s *Session) dispatch(event string, args []any) (map[string]any, error) {
	var req request
	if err := decodeRequest(args, &req); err != nil {
		return nil, err
	}

	switch event {
	case "list_parameters":
		return map[string]any{"parameters": s.studio.ListParameters()}, nil

	case "get_link":
		link, ok := s.studio.GetLink(req.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", studio.ErrUnknownParameter, req.Name)
		}
		return map[string]any{"link": encodeLink(link)}, nil

	case "set_value":
		if req.Value == nil {
			return nil, fmt.Errorf("set_value requires a numeric value")
		}
		return nil, s.studio.SetValue(req.Name, *req.Value)

	case "set_link":
		if req.Target == "" {
			return nil, fmt.Errorf("set_link requires a target")
		}
		return nil, s.studio.SetLink(req.Name, req.Target)

	case "add_node":
		name, err := s.studio.AddNode(req.Type, req.Name)
		if err != nil {
			return nil, err
		}
		return map[string]any{"name": name}, nil

	case "remove_node":
		return nil, s.studio.RemoveNode(req.Name)

	case "bind":
		return map[string]any{"report": encodeReport(s.studio.Bind(s.ctx))}, nil

	case "run_batch":
		if req.Samples < 0 || req.Samples > MaxBatch {
			return nil, fmt.Errorf("samples must be between 0 and %d, got %d", MaxBatch, req.Samples)
		}
		batch, err := s.studio.RunBatch(req.Samples)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			batch = []float32{}
		}
		return map[string]any{"samples": batch}, nil

	case "snapshot":
		var buf bytes.Buffer
		if err := hcl.Write(&buf, s.studio.Snapshot()); err != nil {
			return nil, err
		}
		return map[string]any{"patch": buf.String()}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownEvent, event)
}

// decodeRequest reads the first event argument, whatever shape the transport
// decoded it into, as a request object.
func decodeRequest(args []any, v any) error {
	if len(args) == 0 || args[0] == nil {
		return nil
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}
	return nil
}

func encodeLink(l param.Link) map[string]any {
	if l.IsValue() {
		return map[string]any{"kind": "value", "value": l.Default()}
	}
	return map[string]any{"kind": "reference", "target": l.Target()}
}

func encodeReport(r *engine.Report) map[string]any {
	issues := func(list []engine.Issue) []map[string]string {
		out := make([]map[string]string, len(list))
		for i, is := range list {
			out[i] = map[string]string{"parameter": is.Parameter, "target": is.Target}
		}
		return out
	}
	duplicates := r.Duplicates
	if duplicates == nil {
		duplicates = []string{}
	}
	return map[string]any{
		"parameters":   r.Parameters,
		"slots":        r.Slots,
		"aliased":      r.Aliased,
		"unresolved":   issues(r.Unresolved),
		"cycles":       issues(r.Cycles),
		"duplicates":   duplicates,
		"output_bound": r.OutputBound,
		"clean":        r.Clean(),
	}
}
