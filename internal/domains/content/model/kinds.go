package model

// The four content kinds of the portal. Adding a kind means adding a schema
// here; repository, service and handler come for free.
var (
	NewsSchema = Schema{
		Kind:  "news",
		Table: "news",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "body", Required: true},
			{Name: "category"},
			{Name: "author"},
			{Name: "readTime"},
			{Name: "imageUrl", Media: true},
		},
	}

	BookSchema = Schema{
		Kind:  "books",
		Table: "books",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "author", Required: true},
			{Name: "description", Required: true},
			{Name: "coverUrl", Media: true},
			{Name: "pdfUrl", Media: true},
		},
	}

	MapSchema = Schema{
		Kind:  "maps",
		Table: "maps",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "mapUrl", Media: true},
		},
	}

	VideoSchema = Schema{
		Kind:  "videos",
		Table: "videos",
		Fields: []FieldSpec{
			{Name: "title", Required: true},
			{Name: "description", Required: true},
			{Name: "duration"},
			{Name: "videoUrl", Media: true},
			{Name: "thumbnailUrl", Media: true},
		},
	}
)

// Kinds returns every registered schema in route order.
func Kinds() []Schema {
	return []Schema{NewsSchema, BookSchema, MapSchema, VideoSchema}
}

// KindByName looks a schema up by its URL segment.
func KindByName(kind string) (Schema, bool) {
	for _, s := range Kinds() {
		if s.Kind == kind {
			return s, true
		}
	}
	return Schema{}, false
}
