package decoder

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/goliatone/go-pagetree/internal/document"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// Option configures a Decoder or a single Decode call.
type Option func(*config)

type config struct {
	pageID string
	logger interfaces.Logger
}

// WithPageID pins the root page id. The id must be present in the block table.
func WithPageID(id string) Option {
	return func(c *config) {
		c.pageID = id
	}
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Decoder turns page chunk payloads into documents. It holds no mutable state
// and can be shared across goroutines.
type Decoder struct {
	cfg config
}

// New builds a decoder with the provided defaults.
func New(opts ...Option) *Decoder {
	cfg := config{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Decoder{cfg: cfg}
}

// Decode is a convenience wrapper around New(opts...).Decode.
func Decode(raw []byte, opts ...Option) (*document.Document, error) {
	return New(opts...).Decode(context.Background(), raw)
}

type envelope struct {
	RecordMap struct {
		Block      map[string]json.RawMessage `json:"block"`
		NotionUser map[string]json.RawMessage `json:"notion_user"`
	} `json:"recordMap"`
}

type rawEntry struct {
	Role  string          `json:"role"`
	Value json.RawMessage `json:"value"`
}

// Decode validates the envelope and decodes every entry. Only top-level
// failures are returned; bad blocks become opaque entries.
func (d *Decoder) Decode(ctx context.Context, raw []byte, opts ...Option) (*document.Document, error) {
	cfg := d.cfg
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	logger := cfg.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}

	if err := checkEnvelope(raw); err != nil {
		logger.Warn("decoder.envelope.invalid", "error", err)
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.Warn("decoder.envelope.invalid", "error", err)
		return nil, malformed("page chunk envelope invalid", err, nil)
	}

	table := make(document.Table, len(env.RecordMap.Block))
	opaque := 0
	for id, entryRaw := range env.RecordMap.Block {
		entry := decodeEntry(entryRaw)
		if _, ok := entry.Opaque(); ok {
			opaque++
			logger.Debug("decoder.block.opaque", "block_id", id, "reason", entry.Reason)
		}
		table[id] = entry
	}

	actors, dropped := decodeActors(env.RecordMap.NotionUser)
	if dropped > 0 {
		logger.Debug("decoder.actors.dropped", "count", dropped)
	}

	pageID, err := resolvePageID(table, cfg.pageID)
	if err != nil {
		logger.Warn("decoder.page_id.unresolved", "page_id", cfg.pageID, "error", err)
		return nil, err
	}

	logger.Debug("decoder.decode.completed",
		"page_id", pageID,
		"blocks", len(table),
		"opaque", opaque,
		"actors", len(actors),
	)
	return &document.Document{PageID: pageID, Blocks: table, Actors: actors}, nil
}

// decodeEntry runs stage one ({role, value}) and stage two (typed variant).
func decodeEntry(raw json.RawMessage) document.Entry {
	var entry rawEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return document.NewOpaqueEntry("", raw, ErrEntryShape)
	}
	if isNull(entry.Value) {
		return document.NewOpaqueEntry(entry.Role, raw, ErrMissingValue)
	}
	record, err := decodeRecord(entry.Value)
	if err != nil {
		return document.NewOpaqueEntry(entry.Role, entry.Value, err)
	}
	return document.NewTypedEntry(entry.Role, record)
}

func decodeActors(raw map[string]json.RawMessage) (map[string]document.ActorEntry, int) {
	actors := make(map[string]document.ActorEntry, len(raw))
	dropped := 0
	for id, entryRaw := range raw {
		var entry document.ActorEntry
		if err := json.Unmarshal(entryRaw, &entry); err != nil || entry.Value.ID == "" {
			dropped++
			continue
		}
		actors[id] = entry
	}
	return actors, dropped
}

// resolvePageID honours an explicit id, otherwise picks the first typed page,
// in id order, whose parent is outside the chunk. Chunks without such a page
// fall back to any typed record with an external parent.
func resolvePageID(table document.Table, explicit string) (string, error) {
	if explicit != "" {
		if !table.Has(explicit) {
			return "", pageNotFound("page id not found", []Issue{{Location: "#/recordMap/block", Message: explicit}})
		}
		return explicit, nil
	}

	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fallback := ""
	for _, id := range ids {
		record, ok := table.Lookup(id)
		if !ok || table.Has(record.ParentID) {
			continue
		}
		if record.Kind() == document.KindPage {
			return id, nil
		}
		if fallback == "" {
			fallback = id
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", pageNotFound("page chunk has no root block", nil)
}
