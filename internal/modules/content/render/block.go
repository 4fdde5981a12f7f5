package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/emeraldgate/core/internal/models"
)

// EmbedURL rewrites a "watch?v=" video-sharing link to its embeddable
// form. Any other URL is passed through untouched; if it does not embed,
// that is the author's problem to notice in preview.
func EmbedURL(raw string) string {
	return strings.Replace(raw, "watch?v=", "embed/", 1)
}

// RenderBlock turns one block into its HTML representation, independent of
// the surrounding template. Unknown kinds render nothing.
func RenderBlock(b models.Block) string {
	switch b.Kind {
	case models.BlockHeading:
		lvl := b.HeadingLevel()
		return fmt.Sprintf(`<h%d class="post-heading">%s</h%d>`, lvl, esc(b.Text()), lvl)

	case models.BlockParagraph:
		// Newlines in the source are preserved visually.
		text := strings.ReplaceAll(esc(b.Text()), "\n", "<br />")
		return `<p class="post-paragraph">` + text + `</p>`

	case models.BlockImage:
		return `<figure class="post-figure"><img src="` + esc(b.Text()) + `" alt="" /></figure>`

	case models.BlockVideo:
		return `<div class="post-video"><iframe src="` + esc(EmbedURL(b.Text())) + `" allowfullscreen></iframe></div>`

	case models.BlockList:
		var sb strings.Builder
		sb.WriteString(`<ul class="post-list">`)
		for _, item := range b.Items() {
			sb.WriteString("<li>" + esc(item) + "</li>")
		}
		sb.WriteString("</ul>")
		return sb.String()

	default:
		return ""
	}
}

// RenderBlocks renders the full ordered sequence, one element per block.
func RenderBlocks(bs models.Blocks) string {
	var sb strings.Builder
	for _, b := range bs {
		frag := RenderBlock(b)
		if frag == "" {
			continue
		}
		sb.WriteString(frag)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func esc(s string) string { return template.HTMLEscapeString(s) }
