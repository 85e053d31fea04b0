package effect

import (
	"strings"

	"github.com/chwjbn/render-hub/glib"
)

// ShaderSource holds one vertex and one fragment source parsed out of a
// single annotated shader file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

type shaderStage int

const (
	stageNone shaderStage = iota
	stageVertex
	stageFragment
)

const shaderMarker = "#shader"

// ParseShaderSource splits annotated shader text into per-stage sources.
// A line containing "#shader" switches the active section to the stage
// named on that line; the marker line itself is never copied. Lines seen
// before any marker are discarded. Parsing never fails: text with no
// markers yields two empty sources, which the compiler rejects later.
func ParseShaderSource(text string) ShaderSource {

	sections := map[shaderStage]*strings.Builder{
		stageNone:     {},
		stageVertex:   {},
		stageFragment: {},
	}

	stage := stageNone

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {

		if strings.Contains(line, shaderMarker) {
			if strings.Contains(line, "vertex") {
				stage = stageVertex
			} else if strings.Contains(line, "fragment") {
				stage = stageFragment
			}
			continue
		}

		sections[stage].WriteString(line)
		sections[stage].WriteString("\n")
	}

	return ShaderSource{
		Vertex:   sections[stageVertex].String(),
		Fragment: sections[stageFragment].String(),
	}
}

// ParseShaderFile reads path and splits it. A missing or unreadable file
// yields two empty sources rather than an error.
func ParseShaderFile(path string) ShaderSource {
	return ParseShaderSource(glib.FileReadAllText(path))
}
