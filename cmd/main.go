package main

import (
	"os"
	"runtime"

	"github.com/chwjbn/render-hub/glib"
	"github.com/chwjbn/render-hub/glog"
	"github.com/chwjbn/render-hub/media/effect"
	"github.com/chwjbn/render-hub/media/gconfig"
)

func init() {
	// GLFW and the GL context are bound to the main OS thread.
	runtime.LockOSThread()
}

func main() {

	xRunId := glib.EncryptNewId(glib.AppFileName())

	glog.InfoF("app begin run=[%v]", xRunId)

	xErr := run(xRunId)
	if xErr != nil {
		glog.Error(xErr.Error())
		os.Exit(1)
	}

	glog.Info("app end")

}

func run(runId string) error {

	var xErr error

	xRenderMeta := gconfig.GetRenderMeta(runId)

	glog.InfoF("render meta=[%v]", glib.JsonFromStruct(xRenderMeta))

	xRenderer, xErr := effect.NewRenderer(&xRenderMeta)
	if xErr != nil {
		return xErr
	}

	defer xRenderer.Close()

	xErr = xRenderer.Run()

	return xErr

}
