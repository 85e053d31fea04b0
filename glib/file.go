package glib

import (
	"os"
)

func FileExists(path string) bool {

	bRet := false

	xFileInfo, xFileInfoErr := os.Stat(path)
	if xFileInfoErr != nil {
		return bRet
	}

	if !xFileInfo.IsDir() {
		bRet = true
	}

	return bRet

}

func FileReadAllText(path string) string {

	sData := ""

	xFileData, xFileDataErr := os.ReadFile(path)
	if xFileDataErr != nil {
		return sData
	}

	sData = string(xFileData)

	return sData

}

func FileWriteAllText(path string, data string) bool {

	bRet := false

	xFileDataErr := os.WriteFile(path, []byte(data), 0644)
	if xFileDataErr == nil {
		bRet = true
	}

	return bRet

}
