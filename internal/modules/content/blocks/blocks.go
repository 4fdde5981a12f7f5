// Package blocks implements the editing operations on a post's ordered
// block sequence: append, update, remove and reorder. The operations are
// permissive: references to blocks that no longer exist are ignored rather
// than treated as faults.
package blocks

import (
	"github.com/emeraldgate/core/internal/models"
	"github.com/google/uuid"
)

// Direction is a reorder direction for Move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Editor mutates one in-progress block sequence. It is owned by a single
// editing session; it is not safe for concurrent use.
type Editor struct {
	blocks []models.Block
}

// NewEditor starts an editing session over an existing sequence (nil for a
// fresh post). The input is copied; the caller's slice is never mutated.
func NewEditor(initial []models.Block) *Editor {
	blocks := make([]models.Block, len(initial))
	copy(blocks, initial)
	return &Editor{blocks: blocks}
}

// Blocks returns a copy of the current sequence in editing order.
func (e *Editor) Blocks() models.Blocks {
	out := make(models.Blocks, len(e.blocks))
	copy(out, e.blocks)
	return out
}

// Len returns the number of blocks in the sequence.
func (e *Editor) Len() int { return len(e.blocks) }

// Get returns the block matching id, if present.
func (e *Editor) Get(id string) (models.Block, bool) {
	for i := range e.blocks {
		if e.blocks[i].ID == id {
			return e.blocks[i], true
		}
	}
	return models.Block{}, false
}

// Append constructs a block of the given kind with an empty default payload
// and a fresh identifier, and adds it to the end of the sequence.
func (e *Editor) Append(kind models.BlockKind) models.Block {
	b := models.Block{
		ID:      uuid.NewString(),
		Kind:    kind,
		Content: models.EmptyContent(kind),
	}
	if kind == models.BlockHeading {
		b.Level = models.DefaultHeadingLevel
	}
	e.blocks = append(e.blocks, b)
	return b
}

// UpdateContent replaces the content of the block matching id. Unknown ids
// and payloads whose shape does not match the block's kind are ignored.
func (e *Editor) UpdateContent(id string, content models.BlockContent) {
	for i := range e.blocks {
		if e.blocks[i].ID != id {
			continue
		}
		if !models.ContentShapeMatches(e.blocks[i].Kind, content) {
			return
		}
		e.blocks[i].Content = content
		return
	}
}

// SetHeadingLevel changes the rank of a heading block. Non-heading blocks
// and unknown ids are ignored.
func (e *Editor) SetHeadingLevel(id string, level int) {
	for i := range e.blocks {
		if e.blocks[i].ID != id {
			continue
		}
		if e.blocks[i].Kind != models.BlockHeading {
			return
		}
		e.blocks[i].Level = level
		return
	}
}

// Remove deletes the block matching id; the sequence closes over the gap.
func (e *Editor) Remove(id string) {
	for i := range e.blocks {
		if e.blocks[i].ID == id {
			e.blocks = append(e.blocks[:i], e.blocks[i+1:]...)
			return
		}
	}
}

// Move swaps the block at index with its immediate neighbor in the given
// direction. Moves off either end of the sequence are no-ops.
func (e *Editor) Move(index int, dir Direction) {
	switch dir {
	case DirectionUp:
		if index > 0 && index < len(e.blocks) {
			e.blocks[index], e.blocks[index-1] = e.blocks[index-1], e.blocks[index]
		}
	case DirectionDown:
		if index >= 0 && index < len(e.blocks)-1 {
			e.blocks[index], e.blocks[index+1] = e.blocks[index+1], e.blocks[index]
		}
	}
}
