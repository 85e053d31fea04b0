package effect

import (
	"fmt"
	"path"
	"unsafe"

	"github.com/chwjbn/render-hub/glib"
	"github.com/chwjbn/render-hub/glog"
	"github.com/chwjbn/render-hub/media/gconfig"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
)

type Renderer struct {
	mMeta *gconfig.RenderMeta

	mGlfwReady bool
	mGLWindow  *glfw.Window

	mVertices []float32
	mIndices  []uint32
	mVAO      uint32
	mVBO      uint32
	mEBO      uint32

	mShaderProgram *GlProgram
	mColorLocation int32
}

// NewRenderer brings up the window, the GL context, the quad geometry and
// the shader program. Every GL and GLFW call here and in Run must stay on
// the goroutine that locked the main OS thread.
func NewRenderer(meta *gconfig.RenderMeta) (*Renderer, error) {

	pThis := new(Renderer)
	pThis.mMeta = meta

	xErr := pThis.init()

	if xErr != nil {
		pThis.Close()
		return nil, xErr
	}

	return pThis, nil

}

func (r *Renderer) init() error {

	var xErr error

	xErr = r.initWindow()
	if xErr != nil {
		return xErr
	}

	xErr = r.initOpenGL()
	if xErr != nil {
		return xErr
	}

	xErr = r.initQuad()
	if xErr != nil {
		return xErr
	}

	xErr = r.initShader()
	if xErr != nil {
		return xErr
	}

	return xErr

}

func (r *Renderer) initWindow() error {

	var xErr error

	glfwErr := glfw.Init()
	if glfwErr != nil {
		xErr = fmt.Errorf("glfw.Init error:[%v]", glfwErr.Error())
		return xErr
	}

	r.mGlfwReady = true

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	var winErr error
	r.mGLWindow, winErr = glfw.CreateWindow(r.mMeta.WindowWidth, r.mMeta.WindowHeight, r.mMeta.WindowTitle, nil, nil)
	if winErr != nil {
		xErr = fmt.Errorf("glfw.CreateWindow error:[%v]", winErr.Error())
		return xErr
	}

	r.mGLWindow.MakeContextCurrent()

	glfw.SwapInterval(r.mMeta.SwapInterval)

	return xErr

}

func (r *Renderer) initOpenGL() error {

	var xErr error

	glErr := gl.Init()
	if glErr != nil {
		xErr = fmt.Errorf("gl.Init error:[%v]", glErr.Error())
		return xErr
	}

	glog.InfoF("OpenGL version=[%v]", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Viewport(0, 0, int32(r.mMeta.WindowWidth), int32(r.mMeta.WindowHeight))
	gl.ClearColor(r.mMeta.ClearColorR, r.mMeta.ClearColorG, r.mMeta.ClearColorB, 1.0)

	return xErr

}

func (r *Renderer) initQuad() error {

	var xErr error

	r.mVertices = []float32{
		0.0, 0.0,
		0.5, 0.0,
		0.5, 0.5,
		0.0, 0.5,
	}

	r.mIndices = []uint32{
		// two triangles sharing the quad diagonal
		0, 1, 2,
		0, 3, 2,
	}

	gl.GenVertexArrays(1, &r.mVAO)
	gl.GenBuffers(1, &r.mVBO)
	gl.GenBuffers(1, &r.mEBO)

	gl.BindVertexArray(r.mVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.mVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.mVertices)*4, gl.Ptr(r.mVertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.mEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.mIndices)*4, gl.Ptr(r.mIndices), gl.STATIC_DRAW)

	var stride int32 = 2 * 4
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, uintptr(0))
	gl.EnableVertexAttribArray(0)

	// unbind the VAO (safe practice so we don't accidentally (mis)configure it later)
	gl.BindVertexArray(0)

	return xErr

}

func (r *Renderer) initShader() error {

	var xErr error

	shaderFilePath := path.Join(glib.AppBaseDir(), "data", "shader", fmt.Sprintf("%s.shader", r.mMeta.EffectName))

	shaderSrc := ParseShaderFile(shaderFilePath)

	var progErr error
	r.mShaderProgram, progErr = NewGlProgramFromSource(shaderSrc)
	if progErr != nil {
		xErr = fmt.Errorf("create program from [%v] error:[%v]", shaderFilePath, progErr.Error())
		return xErr
	}

	r.mShaderProgram.Use()

	ClearGlErrors()
	r.mColorLocation = r.mShaderProgram.GetUniformLocation("u_Color")
	checkErr := CheckGlError("GetUniformLocation(u_Color)")
	if checkErr != nil {
		xErr = checkErr
		return xErr
	}

	// -1 means the uniform was optimized out or never declared, and the
	// frame loop has nothing to animate: a precondition failure, not a
	// recoverable state.
	if r.mColorLocation == -1 {
		xErr = fmt.Errorf("uniform [u_Color] not found in effect=[%v]", r.mMeta.EffectName)
		return xErr
	}

	return xErr

}

// Run drives the frame loop until the window is closed: advance the color
// animation, set the uniform, draw the quad, present, poll. A GL error
// reported by the diagnostic wrapper ends the loop and is returned.
func (r *Renderer) Run() error {

	var xErr error

	fpsCounter := NewFpsCounter(glfw.GetTime, func(fps int) {
		glog.InfoF("FPS: %v", fps)
	})

	red, green, blue := float32(0.0), float32(0.0), float32(1.0)
	redStep, greenStep, blueStep := float32(0.05), float32(0.01), float32(0.03)

	for !r.mGLWindow.ShouldClose() {

		fpsCounter.Tick()

		gl.Clear(gl.COLOR_BUFFER_BIT)

		red, redStep = stepColor(red, redStep)
		green, greenStep = stepColor(green, greenStep)
		blue, blueStep = stepColor(blue, blueStep)

		ClearGlErrors()
		gl.Uniform4f(r.mColorLocation, red, green, blue, 1.0)
		checkErr := CheckGlError("Uniform4f(u_Color)")
		if checkErr != nil {
			xErr = checkErr
			break
		}

		gl.BindVertexArray(r.mVAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(r.mIndices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
		checkErr = CheckGlError("DrawElements")
		gl.BindVertexArray(0)
		if checkErr != nil {
			xErr = checkErr
			break
		}

		r.mGLWindow.SwapBuffers()
		glfw.PollEvents()
	}

	return xErr

}

// stepColor bounces value between 0 and 1, flipping the step sign at
// either bound.
func stepColor(value float32, step float32) (float32, float32) {

	if value > 1.0 && step > 0 {
		step = -step
	} else if value < 0.0 && step < 0 {
		step = -step
	}

	return value + step, step
}

// Close releases everything init created, in reverse order. Safe to call
// on a partially initialized renderer and safe to call twice.
func (r *Renderer) Close() {

	if r.mShaderProgram != nil {
		r.mShaderProgram.Delete()
		r.mShaderProgram = nil
	}

	if r.mVBO != 0 {
		gl.DeleteBuffers(1, &r.mVBO)
		r.mVBO = 0
	}

	if r.mEBO != 0 {
		gl.DeleteBuffers(1, &r.mEBO)
		r.mEBO = 0
	}

	if r.mVAO != 0 {
		gl.DeleteVertexArrays(1, &r.mVAO)
		r.mVAO = 0
	}

	if r.mGLWindow != nil {
		r.mGLWindow.Destroy()
		r.mGLWindow = nil
	}

	if r.mGlfwReady {
		glfw.Terminate()
		r.mGlfwReady = false
	}

}
