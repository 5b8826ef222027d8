package blockforge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/blockforge"
)

func sayHello(ctx context.Context) (any, error) { return nil, nil }

func TestEndToEnd(t *testing.T) {
	reg := blockforge.NewRegistry()

	_, err := reg.RegisterBlock("say_hello", blockforge.Command, "say hello", sayHello, &blockforge.BlockOptions{
		ShowIn: []string{"sprites"},
	})
	require.NoError(t, err)

	src, err := blockforge.Generate("demo", "Demo Extension", "#ffcc00", reg)
	require.NoError(t, err)

	assert.Contains(t, src, `opcode: "say_hello"`)
	assert.Contains(t, src, "blockType: Scratch.BlockType.COMMAND")
	assert.Contains(t, src, `text: "say hello"`)
	assert.Contains(t, src, `filter: ["sprites"]`)

	again, err := blockforge.Generate("demo", "Demo Extension", "#ffcc00", reg)
	require.NoError(t, err)
	assert.Equal(t, src, again)
}

func TestPublicErrorTypes(t *testing.T) {
	reg := blockforge.NewRegistry()

	_, err := reg.RegisterBlock("say_hello", blockforge.Command, "say hello", sayHello, nil)
	require.NoError(t, err)

	_, err = reg.RegisterBlock("say_hello", blockforge.Command, "say hello", sayHello, nil)
	var dupErr *blockforge.DuplicateOpcodeError
	require.ErrorAs(t, err, &dupErr)

	_, err = reg.RegisterBlock("other", blockforge.BlockType("label"), "label text", sayHello, nil)
	var typeErr *blockforge.InvalidBlockTypeError
	require.ErrorAs(t, err, &typeErr)

	src, err := blockforge.Generate("demo", "", "#ffcc00", reg)
	var metaErr *blockforge.InvalidExtensionMetadataError
	require.ErrorAs(t, err, &metaErr)
	assert.Empty(t, src)
}
