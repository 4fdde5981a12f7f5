package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockMarshalTextKinds(t *testing.T) {
	b := Block{ID: "b1", Kind: BlockParagraph, Content: TextContent("hello")}
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b1","type":"paragraph","content":"hello"}`, string(raw))
}

func TestBlockMarshalHeadingKeepsLevel(t *testing.T) {
	b := Block{ID: "b2", Kind: BlockHeading, Content: TextContent("Title"), Level: 3}
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b2","type":"heading","content":"Title","level":3}`, string(raw))
}

func TestBlockMarshalOmitsZeroLevel(t *testing.T) {
	b := Block{ID: "b3", Kind: BlockParagraph, Content: TextContent("x")}
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "level")
}

func TestBlockMarshalList(t *testing.T) {
	b := Block{ID: "b4", Kind: BlockList, Content: ListContent{"one", "two"}}
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"b4","type":"list","content":["one","two"]}`, string(raw))
}

func TestBlockUnmarshalRoundTrip(t *testing.T) {
	src := Blocks{
		{ID: "a", Kind: BlockHeading, Content: TextContent("H"), Level: 2},
		{ID: "b", Kind: BlockParagraph, Content: TextContent("P")},
		{ID: "c", Kind: BlockImage, Content: TextContent("https://x/img.png")},
		{ID: "d", Kind: BlockVideo, Content: TextContent("https://x/watch?v=1")},
		{ID: "e", Kind: BlockList, Content: ListContent{"i1", "i2"}},
	}

	raw, err := json.Marshal(src)
	require.NoError(t, err)

	var got Blocks
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, src, got)
}

func TestBlockUnmarshalListFromLegacyString(t *testing.T) {
	var b Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"list","content":"solo"}`), &b))
	assert.Equal(t, ListContent{"solo"}, b.Content)
}

func TestBlockUnmarshalMissingContentFallsBackEmpty(t *testing.T) {
	var p Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","type":"paragraph"}`), &p))
	assert.Equal(t, TextContent(""), p.Content)

	var l Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"y","type":"list"}`), &l))
	assert.Equal(t, ListContent{""}, l.Content)

	var n Block
	require.NoError(t, json.Unmarshal([]byte(`{"id":"z","type":"list","content":null}`), &n))
	assert.Equal(t, ListContent{""}, n.Content)
}

func TestContentShapeMatches(t *testing.T) {
	assert.True(t, ContentShapeMatches(BlockParagraph, TextContent("x")))
	assert.True(t, ContentShapeMatches(BlockList, ListContent{"x"}))
	assert.False(t, ContentShapeMatches(BlockList, TextContent("x")))
	assert.False(t, ContentShapeMatches(BlockHeading, ListContent{"x"}))
}

func TestHeadingLevelSupportedRanks(t *testing.T) {
	assert.Equal(t, 2, Block{Kind: BlockHeading, Level: 2}.HeadingLevel())
	assert.Equal(t, 3, Block{Kind: BlockHeading, Level: 3}.HeadingLevel())
	assert.Equal(t, 2, Block{Kind: BlockHeading, Level: 0}.HeadingLevel())
	assert.Equal(t, 2, Block{Kind: BlockHeading, Level: 7}.HeadingLevel())
}
