package glib

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

func EncryptMd5(data string) string {

	xHash := md5.New()
	xHash.Write([]byte(data))

	return hex.EncodeToString(xHash.Sum(nil))
}

func EncryptNewId(seed string) string {

	xData := fmt.Sprintf("%v|%v", seed, time.Now().UnixNano())

	xData = EncryptMd5(xData)

	return xData

}
