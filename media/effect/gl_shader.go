package effect

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type GlShader struct {
	handle uint32
	stage  uint32
}

func GlStageName(stage uint32) string {

	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}

	return fmt.Sprintf("stage(0x%x)", stage)
}

// NewGlShader compiles src as the given stage (gl.VERTEX_SHADER or
// gl.FRAGMENT_SHADER). On compile failure the driver-side shader object is
// deleted before returning, and the error carries the stage name plus the
// full info log.
func NewGlShader(src string, stage uint32) (*GlShader, error) {

	handle := gl.CreateShader(stage)
	glSrc, freeFn := gl.Strs(src + "\x00")
	defer freeFn()
	gl.ShaderSource(handle, 1, glSrc, nil)
	gl.CompileShader(handle)

	err := getGlError(handle, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog,
		"SHADER::COMPILE_FAILURE::"+GlStageName(stage))
	if err != nil {
		gl.DeleteShader(handle)
		return nil, err
	}

	return &GlShader{handle: handle, stage: stage}, nil
}

func (shader *GlShader) Handle() uint32 {
	return shader.handle
}

func (shader *GlShader) Stage() uint32 {
	return shader.stage
}

func (shader *GlShader) Delete() {
	gl.DeleteShader(shader.handle)
}
