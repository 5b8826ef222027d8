package codegen

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func noArgHandler(ctx context.Context) (any, error)               { return nil, nil }
func oneStringHandler(ctx context.Context, s string) (any, error) { return s, nil }

func demoRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()

	require.NoError(t, reg.RegisterMenu("voices", []string{"alto", "tenor"}, nil))

	_, err := reg.RegisterBlock("say_hello", model.Command, "say hello", noArgHandler, &registry.BlockOptions{
		ShowIn: []string{"sprites"},
	})
	require.NoError(t, err)

	def := cty.StringVal("world")
	_, err = reg.RegisterBlock("greet", model.Reporter, "greet [NAME]", oneStringHandler, &registry.BlockOptions{
		Args: []registry.ArgMeta{{Name: "NAME", Default: &def}},
	})
	require.NoError(t, err)

	return reg
}

const demoGolden = `(function(Scratch) {
    "use strict";

    class Demo {
        getInfo() {
            return {
                id: "demo",
                name: "Demo Extension",
                color1: "#ffcc00",
                blocks: [
                    {
                        opcode: "say_hello",
                        blockType: Scratch.BlockType.COMMAND,
                        text: "say hello",
                        filter: ["sprites"]
                    },
                    {
                        opcode: "greet",
                        blockType: Scratch.BlockType.REPORTER,
                        text: "greet [NAME]",
                        arguments: {
                            NAME: {
                                type: Scratch.ArgumentType.STRING,
                                defaultValue: "world"
                            }
                        }
                    }
                ],
                menus: {
                    voices: {
                        acceptReporters: false,
                        items: ["alto","tenor"]
                    }
                }
            };
        }

        say_hello(args) {
            Host.invoke("demo", "say_hello", []);
        }

        greet(args) {
            return Host.invoke("demo", "greet", [args.NAME]);
        }
    }

    Scratch.extensions.register(new Demo());
})(Scratch);
`

func TestGenerate_Golden(t *testing.T) {
	reg := demoRegistry(t)

	src, err := New().Generate("demo", "Demo Extension", "#ffcc00", reg)
	require.NoError(t, err)

	if diff := cmp.Diff(demoGolden, src); diff != "" {
		t.Errorf("generated module mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	reg := demoRegistry(t)

	first, err := New().Generate("demo", "Demo Extension", "#ffcc00", reg)
	require.NoError(t, err)
	second, err := New().Generate("demo", "Demo Extension", "#ffcc00", reg)
	require.NoError(t, err)

	assert.Equal(t, first, second, "two invocations over an unchanged registry must be byte-identical")
}

func TestGenerate_DescriptorOrderFollowsRegistration(t *testing.T) {
	reg := registry.New()
	opcodes := []string{"zulu", "alpha", "mike"}
	for _, opcode := range opcodes {
		_, err := reg.RegisterBlock(opcode, model.Command, "run "+opcode, noArgHandler, nil)
		require.NoError(t, err)
	}

	src, err := New().Generate("ordered", "Ordered", "#123abc", reg)
	require.NoError(t, err)

	last := -1
	for _, opcode := range opcodes {
		idx := strings.Index(src, `opcode: "`+opcode+`"`)
		require.GreaterOrEqual(t, idx, 0, "opcode %q missing from output", opcode)
		assert.Greater(t, idx, last, "opcode %q emitted out of registration order", opcode)
		last = idx
	}
}

func TestGenerate_FilterRenamesShowIn(t *testing.T) {
	reg := registry.New()
	_, err := reg.RegisterBlock("stage_only", model.Command, "stage only", noArgHandler, &registry.BlockOptions{
		ShowIn: []string{"stage"},
	})
	require.NoError(t, err)

	src, err := New().Generate("vis", "Visibility", "#00ff00", reg)
	require.NoError(t, err)

	assert.Contains(t, src, `filter: ["stage"]`)
	assert.NotContains(t, src, "showIn", "the host-side property name must not leak into the artifact")
	assert.NotContains(t, src, "show_in")
}

func TestGenerate_BooleanBlocksReturn(t *testing.T) {
	reg := registry.New()
	_, err := reg.RegisterBlock("is_ready", model.Boolean, "ready?", noArgHandler, nil)
	require.NoError(t, err)

	src, err := New().Generate("pred", "Predicates", "#ff0000", reg)
	require.NoError(t, err)

	assert.Contains(t, src, `return Host.invoke("pred", "is_ready", []);`)
	assert.Contains(t, src, "blockType: Scratch.BlockType.BOOLEAN")
}

func TestGenerate_InvalidMetadata(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		label string
		color string
		field string
	}{
		{"empty id", "", "Demo", "#ffcc00", "id"},
		{"id with space", "my ext", "Demo", "#ffcc00", "id"},
		{"empty name", "demo", "", "#ffcc00", "name"},
		{"blank name", "demo", "   ", "#ffcc00", "name"},
		{"empty color", "demo", "Demo", "", "color"},
		{"color missing hash", "demo", "Demo", "ffcc00", "color"},
		{"color wrong length", "demo", "Demo", "#ffcc0", "color"},
		{"color non-hex", "demo", "Demo", "#ggcc00", "color"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := registry.New()
			_, err := reg.RegisterBlock("noop", model.Command, "noop", noArgHandler, nil)
			require.NoError(t, err)

			src, err := New().Generate(tc.id, tc.label, tc.color, reg)
			var metaErr *InvalidExtensionMetadataError
			require.ErrorAs(t, err, &metaErr)
			assert.Equal(t, tc.field, metaErr.Field)
			assert.Empty(t, src, "no partial output on validation failure")
		})
	}
}

func TestGenerate_NoBlocks(t *testing.T) {
	src, err := New().Generate("demo", "Demo", "#ffcc00", registry.New())
	require.Error(t, err)
	assert.Empty(t, src)
}

func TestGenerate_UnknownMenuReference(t *testing.T) {
	reg := registry.New()
	_, err := reg.RegisterBlock("pick", model.Reporter, "pick [VOICE]", oneStringHandler, &registry.BlockOptions{
		Args: []registry.ArgMeta{{Name: "VOICE", Menu: "voices"}},
	})
	require.NoError(t, err)

	src, err := New().Generate("demo", "Demo", "#ffcc00", reg)
	require.Error(t, err)
	assert.Empty(t, src)
}

func TestGenerate_ExtrasAndIcons(t *testing.T) {
	reg := registry.New()
	_, err := reg.RegisterBlock("tick", model.Command, "tick", noArgHandler, &registry.BlockOptions{
		Terminal: true,
	})
	require.NoError(t, err)
	_, err = reg.RegisterBlock("raw", model.Command, "raw", nil, &registry.BlockOptions{
		JSBody: "counter += 1;\nconsole.log(counter);",
	})
	require.NoError(t, err)

	gen := New()
	gen.AddImport("// extra prelude")
	gen.AddGlobalVar("counter", "0")
	gen.AddJSFunction("helper() {\n    return counter;\n}")
	gen.DocsURI = "https://example.com/docs"

	src, err := gen.Generate("extras", "Extras", "#abc", reg)
	require.NoError(t, err)

	assert.Contains(t, src, "// extra prelude")
	assert.Contains(t, src, "let counter = 0;")
	assert.Contains(t, src, "helper() {")
	assert.Contains(t, src, `docsURI: "https://example.com/docs"`)
	assert.Contains(t, src, "isTerminal: true")
	assert.Contains(t, src, "console.log(counter);")
	assert.NotContains(t, src, `Host.invoke("extras", "raw"`, "raw JS blocks must not also dispatch to the bridge")
}

func TestValidColor(t *testing.T) {
	assert.True(t, validColor("#ffcc00"))
	assert.True(t, validColor("#abc"))
	assert.True(t, validColor("#ABCDEF"))
	assert.False(t, validColor("#abcd"))
	assert.False(t, validColor("red"))
	assert.False(t, validColor(""))
	assert.False(t, validColor("#12345g"))
}
