package render_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
)

func renderText(markdown string, options *render.Options) string {
	tree := parse.Parse("", []byte(markdown), nil)
	return string(render.NewTextRenderer(tree, options).Render())
}

func TestTextRenderer(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading and gap", "# Title\n\nbody", "Title\n\nbody"},
		{
			"placeholders",
			"Hello <@1> <#2> <@&3> <:blob:5> <t:0:R>",
			"Hello @User #channel @Role :blob: in a moment",
		},
		{"emphasis is dropped", "__***x***__ ~~s~~ ||hidden||", "x s hidden"},
		{"link text", "[site](https://example.com) https://example.com/a", "site https://example.com/a"},
		{"list", "- a\n  - b\n- c", "• a\n  • b\n• c"},
		{"code block", "```go\nx := 1\n```", "x := 1"},
		{"paragraph lines", "one\ntwo", "one\ntwo"},
		{"timestamp", "<t:0:D>", "January 1, 1970"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, renderText(test.markdown, nil))
		})
	}
}

func TestTextRendererTimestampLocation(t *testing.T) {
	options := render.NewOptions()
	options.TimestampLocation = time.FixedZone("UTC+1", 3600)
	assert.Equal(t, "01:00", renderText("<t:0:t>", options))
	assert.Equal(t, "00:00:00", renderText("<t:0:T>", nil))
}
