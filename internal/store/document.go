package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schemaless record as read back from a collection.
type Document = map[string]any

// Serialize returns a JSON-safe copy of doc: object identifiers become
// their hex string form and timestamps become RFC 3339 UTC strings.
// Every other value passes through unchanged, including nested
// documents. The function is pure and idempotent; an empty or nil
// document is returned as-is.
func Serialize(doc Document) Document {
	if len(doc) == 0 {
		return doc
	}
	out := make(Document, len(doc))
	for key, value := range doc {
		switch v := value.(type) {
		case primitive.ObjectID:
			out[key] = v.Hex()
		case primitive.DateTime:
			out[key] = v.Time().UTC().Format(time.RFC3339Nano)
		case time.Time:
			out[key] = v.UTC().Format(time.RFC3339Nano)
		default:
			out[key] = value
		}
	}
	return out
}

// SerializeAll maps Serialize over docs, always returning a non-nil
// slice so an empty result encodes as [] rather than null.
func SerializeAll(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Serialize(doc))
	}
	return out
}
