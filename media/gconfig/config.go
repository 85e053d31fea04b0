package gconfig

import (
	"path"

	"github.com/chwjbn/render-hub/glib"
	"github.com/chwjbn/render-hub/glog"
)

type RenderMeta struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	EffectName   string
	SwapInterval int

	ClearColorR float32
	ClearColorG float32
	ClearColorB float32
}

func defaultRenderMeta() RenderMeta {

	var metaData RenderMeta

	metaData.WindowWidth = 640
	metaData.WindowHeight = 480
	metaData.WindowTitle = "Hello World"

	metaData.EffectName = "basic"
	metaData.SwapInterval = 0

	metaData.ClearColorR = 0.0
	metaData.ClearColorG = 0.0
	metaData.ClearColorB = 0.0

	return metaData

}

func renderMetaFromJson(metaJson string) (RenderMeta, error) {

	metaData := defaultRenderMeta()

	jsonErr := glib.JsonToStruct(&metaData, metaJson)
	if jsonErr != nil {
		// a half-applied override is worse than none
		return defaultRenderMeta(), jsonErr
	}

	return metaData, nil

}

// GetRenderMeta returns the render settings for one run: built-in defaults,
// overridden by an optional render.json next to the binary. A broken
// override file is logged and ignored.
func GetRenderMeta(runId string) RenderMeta {

	metaData := defaultRenderMeta()

	metaFilePath := path.Join(glib.AppBaseDir(), "render.json")
	if !glib.FileExists(metaFilePath) {
		return metaData
	}

	var jsonErr error
	metaData, jsonErr = renderMetaFromJson(glib.FileReadAllText(metaFilePath))
	if jsonErr != nil {
		glog.WarnF("invalid render.json for run=[%v], using defaults:[%v]", runId, jsonErr.Error())
	}

	return metaData

}
