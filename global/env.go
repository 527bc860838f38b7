package global

import (
	"github.com/mynote/mynote-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "MyNote Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
