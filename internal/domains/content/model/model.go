package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FieldSpec describes one field of a content kind.
type FieldSpec struct {
	Name     string
	Required bool
	Media    bool // holds a URL written by the upload pipeline
}

// Schema is the full field description of one content kind.
// The generic repository/service/handler trio is instantiated once per schema
// instead of duplicating the CRUD stack for every kind.
type Schema struct {
	Kind   string // URL segment: news, books, maps, videos
	Table  string
	Fields []FieldSpec
}

// Has reports whether the schema knows a field name.
func (s Schema) Has(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// IsMedia reports whether a field stores a media URL.
func (s Schema) IsMedia(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Media
		}
	}
	return false
}

// RequiredFields returns the names that must be non-empty at creation.
func (s Schema) RequiredFields() []string {
	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// MediaFields returns the names of all media URL fields.
func (s Schema) MediaFields() []string {
	var media []string
	for _, f := range s.Fields {
		if f.Media {
			media = append(media, f.Name)
		}
	}
	return media
}

// Document is one persisted content entity. The identity is server-generated
// and immutable; the field bag holds only keys accepted by the schema.
type Document struct {
	ID        uuid.UUID
	Fields    map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarshalJSON flattens the field bag so the wire shape stays
// {"id": ..., "title": ..., "createdAt": ..., "updatedAt": ...}.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Fields)+3)
	for k, v := range d.Fields {
		out[k] = v
	}
	out["id"] = d.ID.String()
	out["createdAt"] = d.CreatedAt.Format(time.RFC3339Nano)
	out["updatedAt"] = d.UpdatedAt.Format(time.RFC3339Nano)
	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON (used by the list cache round trip).
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if idStr, ok := raw["id"]; ok {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return err
		}
		d.ID = id
		delete(raw, "id")
	}
	if createdStr, ok := raw["createdAt"]; ok {
		created, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return err
		}
		d.CreatedAt = created
		delete(raw, "createdAt")
	}
	if updatedStr, ok := raw["updatedAt"]; ok {
		updated, err := time.Parse(time.RFC3339Nano, updatedStr)
		if err != nil {
			return err
		}
		d.UpdatedAt = updated
		delete(raw, "updatedAt")
	}

	d.Fields = raw
	return nil
}
