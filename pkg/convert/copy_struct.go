package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from src into dst
// StructAssign 把 src 与 dst 的相同字段名的值复制到 dst 中
// dst 需要传入指针
func StructAssign(src any, dst any) any {
	_ = copier.Copy(dst, src)
	return dst
}
