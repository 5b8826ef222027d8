package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/vk/blockforge/internal/model"
	"github.com/vk/blockforge/internal/registry"
)

// descriptorFieldNames maps host-side property names onto the descriptor
// field names the runtime schema expects. The showin/filter divergence is a
// pure rename at this serialization boundary; no semantics change with it.
var descriptorFieldNames = map[string]string{
	"showin":   "filter",
	"terminal": "isTerminal",
}

// Generator serializes one extension. Besides the required metadata it
// carries the optional module-level extras: raw imports, global variables,
// free-standing JS functions, and icon/docs URIs.
type Generator struct {
	BlockIconURI string
	MenuIconURI  string
	DocsURI      string

	imports     []string
	globalVars  []string
	jsFunctions []string
}

// New creates a Generator with the standard prelude.
func New() *Generator {
	return &Generator{
		imports: []string{`"use strict";`},
	}
}

// AddImport appends a raw JavaScript statement to the module prelude.
func (g *Generator) AddImport(js string) {
	g.imports = append(g.imports, js)
}

// AddGlobalVar declares a module-level variable, optionally initialized.
func (g *Generator) AddGlobalVar(name, value string) {
	if value != "" {
		g.globalVars = append(g.globalVars, fmt.Sprintf("let %s = %s;", name, value))
	} else {
		g.globalVars = append(g.globalVars, fmt.Sprintf("let %s;", name))
	}
}

// AddJSFunction embeds a verbatim JavaScript function into the extension
// class body.
func (g *Generator) AddJSFunction(js string) {
	g.jsFunctions = append(g.jsFunctions, js)
}

// Generate validates the extension-level metadata and serializes the whole
// registry into the source text of a loadable extension module. Block and
// menu descriptors appear in registration order.
func (g *Generator) Generate(id, name, color string, reg *registry.Registry) (string, error) {
	ext := &model.ExtensionDefinition{
		ID:           id,
		Name:         name,
		Color:        color,
		BlockIconURI: g.BlockIconURI,
		MenuIconURI:  g.MenuIconURI,
		DocsURI:      g.DocsURI,
		Blocks:       reg.Blocks(),
		Menus:        reg.Menus(),
	}
	if err := g.validate(ext); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	g.writeHeader(&buf)
	g.writeClass(&buf, ext)
	g.writeFooter(&buf, ext)
	return buf.String(), nil
}

func (g *Generator) validate(ext *model.ExtensionDefinition) error {
	if !identRegex.MatchString(ext.ID) {
		return &InvalidExtensionMetadataError{Field: "id", Value: ext.ID}
	}
	if strings.TrimSpace(ext.Name) == "" {
		return &InvalidExtensionMetadataError{Field: "name", Value: ext.Name}
	}
	if !validColor(ext.Color) {
		return &InvalidExtensionMetadataError{Field: "color", Value: ext.Color}
	}
	if len(ext.Blocks) == 0 {
		return fmt.Errorf("extension %q: at least one block must be registered", ext.ID)
	}

	menuNames := make(map[string]struct{}, len(ext.Menus))
	for _, menu := range ext.Menus {
		menuNames[menu.Name] = struct{}{}
	}
	for _, block := range ext.Blocks {
		for _, arg := range block.Args {
			if arg.Menu == "" {
				continue
			}
			if _, ok := menuNames[arg.Menu]; !ok {
				return fmt.Errorf("block %q: argument %q references unknown menu %q", block.Opcode, arg.Name, arg.Menu)
			}
		}
	}
	return nil
}

func (g *Generator) writeHeader(buf *bytes.Buffer) {
	buf.WriteString("(function(Scratch) {\n")
	for _, imp := range g.imports {
		fmt.Fprintf(buf, "    %s\n", imp)
	}
	if len(g.globalVars) > 0 {
		buf.WriteString("\n")
		for _, v := range g.globalVars {
			fmt.Fprintf(buf, "    %s\n", v)
		}
	}
	buf.WriteString("\n")
}

func (g *Generator) writeClass(buf *bytes.Buffer, ext *model.ExtensionDefinition) {
	fmt.Fprintf(buf, "    class %s {\n", className(ext.ID))
	buf.WriteString("        getInfo() {\n")
	buf.WriteString("            return {\n")
	fmt.Fprintf(buf, "                id: %s,\n", jsString(ext.ID))
	fmt.Fprintf(buf, "                name: %s,\n", jsString(ext.Name))
	fmt.Fprintf(buf, "                color1: %s,\n", jsString(ext.Color))
	if ext.BlockIconURI != "" {
		fmt.Fprintf(buf, "                blockIconURI: %s,\n", jsString(ext.BlockIconURI))
	}
	if ext.MenuIconURI != "" {
		fmt.Fprintf(buf, "                menuIconURI: %s,\n", jsString(ext.MenuIconURI))
	}
	if ext.DocsURI != "" {
		fmt.Fprintf(buf, "                docsURI: %s,\n", jsString(ext.DocsURI))
	}

	g.writeBlockDescriptors(buf, ext)
	g.writeMenuDescriptors(buf, ext)

	buf.WriteString("            };\n")
	buf.WriteString("        }\n")

	for _, fn := range g.jsFunctions {
		buf.WriteString("\n")
		writeIndented(buf, fn, "        ")
	}

	for _, block := range ext.Blocks {
		buf.WriteString("\n")
		g.writeBlockMethod(buf, ext, block)
	}

	buf.WriteString("    }\n")
}

func (g *Generator) writeBlockDescriptors(buf *bytes.Buffer, ext *model.ExtensionDefinition) {
	buf.WriteString("                blocks: [\n")
	for i, block := range ext.Blocks {
		buf.WriteString("                    {\n")
		fmt.Fprintf(buf, "                        opcode: %s,\n", jsString(block.Opcode))
		fmt.Fprintf(buf, "                        blockType: Scratch.BlockType.%s,\n", block.Type.RuntimeToken())
		fmt.Fprintf(buf, "                        text: %s", jsString(block.Text))

		if len(block.Args) > 0 {
			buf.WriteString(",\n                        arguments: {\n")
			for j, arg := range block.Args {
				fmt.Fprintf(buf, "                            %s: {\n", arg.Name)
				fmt.Fprintf(buf, "                                type: Scratch.ArgumentType.%s", model.ArgumentToken(arg.Type))
				if arg.Default != nil {
					// Defaults are validated at registration; the only way
					// to get here with an unsupported type is a programming
					// error in the registry itself.
					lit, err := defaultLiteral(*arg.Default)
					if err == nil {
						fmt.Fprintf(buf, ",\n                                defaultValue: %s", lit)
					}
				}
				if arg.Menu != "" {
					fmt.Fprintf(buf, ",\n                                menu: %s", jsString(arg.Menu))
				}
				buf.WriteString("\n                            }")
				if j < len(block.Args)-1 {
					buf.WriteString(",")
				}
				buf.WriteString("\n")
			}
			buf.WriteString("                        }")
		}

		if len(block.ShowIn) > 0 {
			fmt.Fprintf(buf, ",\n                        %s: %s", descriptorFieldNames["showin"], jsStringList(block.ShowIn))
		}
		if block.Terminal {
			fmt.Fprintf(buf, ",\n                        %s: true", descriptorFieldNames["terminal"])
		}

		buf.WriteString("\n                    }")
		if i < len(ext.Blocks)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("                ],\n")
}

func (g *Generator) writeMenuDescriptors(buf *bytes.Buffer, ext *model.ExtensionDefinition) {
	if len(ext.Menus) == 0 {
		return
	}
	buf.WriteString("                menus: {\n")
	for i, menu := range ext.Menus {
		fmt.Fprintf(buf, "                    %s: {\n", menu.Name)
		fmt.Fprintf(buf, "                        acceptReporters: %s,\n", jsBool(menu.AcceptReporters))
		if menu.Dynamic != "" {
			fmt.Fprintf(buf, "                        items: %s\n", jsString(menu.Dynamic))
		} else {
			fmt.Fprintf(buf, "                        items: %s\n", jsStringList(menu.Items))
		}
		buf.WriteString("                    }")
		if i < len(ext.Menus)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("                },\n")
}

// writeBlockMethod emits the per-opcode handler entry. Blocks with a raw JS
// body get it verbatim; everything else forwards to the host bridge with
// the runtime-supplied arguments passed positionally in declaration order.
func (g *Generator) writeBlockMethod(buf *bytes.Buffer, ext *model.ExtensionDefinition, block *model.BlockDefinition) {
	fmt.Fprintf(buf, "        %s(args) {\n", block.Opcode)
	if block.JSBody != "" {
		writeIndented(buf, block.JSBody, "            ")
	} else {
		params := make([]string, 0, len(block.Args))
		for _, arg := range block.Args {
			params = append(params, "args."+arg.Name)
		}
		call := fmt.Sprintf("Host.invoke(%s, %s, [%s]);", jsString(ext.ID), jsString(block.Handler), strings.Join(params, ", "))
		if block.Type.ReturnsValue() {
			call = "return " + call
		}
		fmt.Fprintf(buf, "            %s\n", call)
	}
	buf.WriteString("        }\n")
}

func (g *Generator) writeFooter(buf *bytes.Buffer, ext *model.ExtensionDefinition) {
	buf.WriteString("\n")
	fmt.Fprintf(buf, "    Scratch.extensions.register(new %s());\n", className(ext.ID))
	buf.WriteString("})(Scratch);\n")
}

// className derives the JS class name from the extension id, uppercasing
// the first character the way the runtime's examples do.
func className(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// writeIndented writes a multi-line snippet with every non-blank line
// prefixed by the given indent.
func writeIndented(buf *bytes.Buffer, snippet, indent string) {
	for _, line := range strings.Split(strings.TrimRight(snippet, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(indent)
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}
