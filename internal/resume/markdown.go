package resume

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type rendererKey struct {
	dark  bool
	width int
}

type outputKey struct {
	rendererKey
	md string
}

// Markdown renders about text for the terminal, caching one glamour
// renderer per style and width, and the output per document.
type Markdown struct {
	renderers map[rendererKey]*glamour.TermRenderer
	outputs   map[outputKey]string
}

// NewMarkdown returns an empty renderer cache.
func NewMarkdown() *Markdown {
	return &Markdown{
		renderers: make(map[rendererKey]*glamour.TermRenderer),
		outputs:   make(map[outputKey]string),
	}
}

// Render renders md with the dark or light standard style, wrapped at width.
func (m *Markdown) Render(md string, dark bool, width int) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	key := rendererKey{dark: dark, width: max(20, width)}
	if out, ok := m.outputs[outputKey{key, md}]; ok {
		return out, nil
	}
	r, ok := m.renderers[key]
	if !ok {
		style := styles.LightStyle
		if dark {
			style = styles.DarkStyle
		}
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(key.width),
		)
		if err != nil {
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		m.renderers[key] = r
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	out = strings.Trim(out, "\n")
	m.outputs[outputKey{key, md}] = out
	return out, nil
}
