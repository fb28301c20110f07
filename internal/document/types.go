package document

import "encoding/json"

// Record is a single typed content block. Identity, lineage and timestamp
// fields mirror the record map payload; Variant carries the kind specific data.
type Record struct {
	ID                string       `json:"id"`
	Version           int64        `json:"version"`
	CreatedTime       int64        `json:"created_time"`
	LastEditedTime    int64        `json:"last_edited_time"`
	ParentID          string       `json:"parent_id"`
	ParentTable       string       `json:"parent_table"`
	Alive             bool         `json:"alive"`
	CreatedByTable    string       `json:"created_by_table,omitempty"`
	CreatedByID       string       `json:"created_by_id,omitempty"`
	LastEditedByTable string       `json:"last_edited_by_table,omitempty"`
	LastEditedByID    string       `json:"last_edited_by_id,omitempty"`
	ShardID           *int64       `json:"shard_id,omitempty"`
	SpaceID           *string      `json:"space_id,omitempty"`
	Content           []string     `json:"content,omitempty"`
	Format            *BlockFormat `json:"format,omitempty"`
	Variant           Variant      `json:"-"`
}

// Kind reports the discriminant of the record variant. Records without a
// variant report an empty kind.
func (r *Record) Kind() Kind {
	if r == nil || r.Variant == nil {
		return ""
	}
	return r.Variant.Kind()
}

// Children returns the ordered child ids. A nil record or missing content
// yields an empty slice.
func (r *Record) Children() []string {
	if r == nil || len(r.Content) == 0 {
		return []string{}
	}
	return r.Content
}

// Color returns the block level color hint, ColorNone when absent.
func (r *Record) Color() Color {
	if r == nil || r.Format == nil {
		return ColorNone
	}
	return r.Format.BlockColor
}

// BlockFormat holds the visual hints shared by every variant.
type BlockFormat struct {
	BlockColor Color `json:"block_color,omitempty"`
}

// Entry is the decode result stored for every block id. Exactly one of
// Record or Raw is populated: typed entries carry Record, opaque entries keep
// the undecoded value together with the reason stage two rejected it.
type Entry struct {
	Role   string          `json:"role"`
	Record *Record         `json:"-"`
	Raw    json.RawMessage `json:"-"`
	Reason error           `json:"-"`
}

// Typed returns the record when the entry decoded into the block union.
func (e Entry) Typed() (*Record, bool) {
	if e.Record == nil {
		return nil, false
	}
	return e.Record, true
}

// Opaque returns the preserved raw value for entries that did not decode.
func (e Entry) Opaque() (json.RawMessage, bool) {
	if e.Record != nil {
		return nil, false
	}
	return e.Raw, true
}

// NewTypedEntry wraps a decoded record.
func NewTypedEntry(role string, record *Record) Entry {
	return Entry{Role: role, Record: record}
}

// NewOpaqueEntry wraps a value that could not be interpreted.
func NewOpaqueEntry(role string, raw json.RawMessage, reason error) Entry {
	return Entry{Role: role, Raw: raw, Reason: reason}
}

// Actor is a workspace member referenced by created_by/last_edited_by fields.
type Actor struct {
	ID                        string `json:"id"`
	Version                   int64  `json:"version"`
	Email                     string `json:"email"`
	GivenName                 string `json:"given_name"`
	FamilyName                string `json:"family_name"`
	ProfilePhoto              string `json:"profile_photo"`
	OnboardingComplete        *bool  `json:"onboarding_complete,omitempty"`
	MobileOnboardingComplete  *bool  `json:"mobile_onboarding_complete,omitempty"`
	ClipperOnboardingComplete *bool  `json:"clipper_onboarding_complete,omitempty"`
}

// ActorEntry mirrors the {role, value} envelope used for actors.
type ActorEntry struct {
	Role  string `json:"role"`
	Value Actor  `json:"value"`
}

// Document is the decoded page chunk. It is immutable once decoded and safe
// for concurrent reads.
type Document struct {
	PageID string
	Blocks Table
	Actors map[string]ActorEntry
}

// Actor returns the actor profile for id.
func (d *Document) Actor(id string) (Actor, bool) {
	if d == nil || d.Actors == nil {
		return Actor{}, false
	}
	entry, ok := d.Actors[id]
	if !ok {
		return Actor{}, false
	}
	return entry.Value, true
}
