package render

import (
	"encoding/json"
	"io"
)

type Renderer[T any] interface {
	Render(result T) error
}

// RenderJSON writes v as indented JSON
func RenderJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
