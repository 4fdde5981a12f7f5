package models

import "encoding/json"

// BlockKind enumerates the closed set of content block types.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockImage     BlockKind = "image"
	BlockVideo     BlockKind = "video"
	BlockList      BlockKind = "list"
)

// DefaultHeadingLevel is the heading rank used when a heading block carries
// no explicit level.
const DefaultHeadingLevel = 2

// BlockContent is the payload of a block. One variant exists per payload
// shape: TextContent for heading/paragraph/image/video, ListContent for list.
// Keeping the shapes as distinct types makes a kind/content mismatch
// unrepresentable instead of a runtime surprise.
type BlockContent interface{ isBlockContent() }

// TextContent holds the payload of heading, paragraph, image and video
// blocks (text, or a URL for image/video).
type TextContent string

func (TextContent) isBlockContent() {}

// ListContent holds the ordered line items of a list block.
type ListContent []string

func (ListContent) isBlockContent() {}

// ContentShapeMatches reports whether content is the payload variant
// expected for the given kind.
func ContentShapeMatches(kind BlockKind, content BlockContent) bool {
	switch content.(type) {
	case ListContent:
		return kind == BlockList
	case TextContent:
		return kind != BlockList
	default:
		return false
	}
}

// EmptyContent returns the empty default payload for a block kind:
// "" for scalar kinds, a single blank line item for lists.
func EmptyContent(kind BlockKind) BlockContent {
	if kind == BlockList {
		return ListContent{""}
	}
	return TextContent("")
}

// Block is one typed unit of post content.
type Block struct {
	ID      string
	Kind    BlockKind
	Content BlockContent
	Level   int // heading rank, 0 means default
}

// Text returns the scalar payload, or "" for list blocks.
func (b Block) Text() string {
	if t, ok := b.Content.(TextContent); ok {
		return string(t)
	}
	return ""
}

// Items returns the list payload, or nil for scalar blocks.
func (b Block) Items() []string {
	if l, ok := b.Content.(ListContent); ok {
		return []string(l)
	}
	return nil
}

// HeadingLevel returns the effective heading rank. Levels 2 and 3 are the
// ranks the editor produces; anything else falls back to the default.
func (b Block) HeadingLevel() int {
	if b.Level == 2 || b.Level == 3 {
		return b.Level
	}
	return DefaultHeadingLevel
}

// blockWire is the persisted JSON layout, field-for-field compatible with
// rows written by the previous editor: content is a string for scalar
// kinds and a string array for lists.
type blockWire struct {
	ID      string          `json:"id"`
	Type    BlockKind       `json:"type"`
	Content json.RawMessage `json:"content"`
	Level   int             `json:"level,omitempty"`
}

func (b Block) MarshalJSON() ([]byte, error) {
	var content any
	switch c := b.Content.(type) {
	case ListContent:
		if c == nil {
			c = ListContent{}
		}
		content = []string(c)
	case TextContent:
		content = string(c)
	default:
		if b.Kind == BlockList {
			content = []string{}
		} else {
			content = ""
		}
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockWire{
		ID:      b.ID,
		Type:    b.Kind,
		Content: raw,
		Level:   b.Level,
	})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var w blockWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	b.ID = w.ID
	b.Kind = w.Type
	b.Level = w.Level
	b.Content = decodeBlockContent(w.Type, w.Content)
	return nil
}

// DecodeContent parses a raw JSON payload into the content shape for kind,
// with the same tolerance as the wire codec.
func DecodeContent(kind BlockKind, raw json.RawMessage) BlockContent {
	return decodeBlockContent(kind, raw)
}

// decodeBlockContent is tolerant of legacy rows: a list stored as a bare
// string becomes a one-item list, anything unparseable becomes the empty
// payload for the kind.
func decodeBlockContent(kind BlockKind, raw json.RawMessage) BlockContent {
	if kind == BlockList {
		var items []string
		if err := json.Unmarshal(raw, &items); err == nil && items != nil {
			return ListContent(items)
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			return ListContent{single}
		}
		return EmptyContent(kind)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return TextContent(text)
	}
	return EmptyContent(kind)
}

// Blocks is an ordered block sequence, embedded in a post as one JSON
// column. Order is meaningful and preserved exactly as arranged.
type Blocks []Block
