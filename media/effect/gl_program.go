package effect

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

type GlProgram struct {
	handle uint32
}

// NewGlProgram attaches both shaders to a fresh program, links and
// validates it, then deletes the shader objects. Attachment holds a
// driver-side reference, so once the link succeeds the intermediate
// shaders are no longer needed by anyone.
func NewGlProgram(vertexShader *GlShader, fragmentShader *GlShader) (*GlProgram, error) {

	prog := &GlProgram{handle: gl.CreateProgram()}

	gl.AttachShader(prog.handle, vertexShader.Handle())
	gl.AttachShader(prog.handle, fragmentShader.Handle())

	gl.LinkProgram(prog.handle)
	linkErr := getGlError(prog.handle, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog,
		"PROGRAM::LINK_FAILURE")

	gl.ValidateProgram(prog.handle)

	vertexShader.Delete()
	fragmentShader.Delete()

	if linkErr != nil {
		gl.DeleteProgram(prog.handle)
		return nil, linkErr
	}

	return prog, nil
}

// NewGlProgramFromSource compiles both stages of src and links them. The
// first compile failure aborts; a failed fragment compile still cleans up
// the already-compiled vertex shader.
func NewGlProgramFromSource(src ShaderSource) (*GlProgram, error) {

	vertexShader, vsErr := NewGlShader(src.Vertex, gl.VERTEX_SHADER)
	if vsErr != nil {
		return nil, vsErr
	}

	fragmentShader, fsErr := NewGlShader(src.Fragment, gl.FRAGMENT_SHADER)
	if fsErr != nil {
		vertexShader.Delete()
		return nil, fsErr
	}

	return NewGlProgram(vertexShader, fragmentShader)
}

func (prog *GlProgram) Handle() uint32 {
	return prog.handle
}

func (prog *GlProgram) Use() {
	gl.UseProgram(prog.handle)
}

func (prog *GlProgram) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(prog.handle, gl.Str(name+"\x00"))
}

func (prog *GlProgram) Delete() {
	gl.DeleteProgram(prog.handle)
}
