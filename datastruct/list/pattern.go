package list

import (
	"reflect"

	"linkedList/lib/utils"
)

// tagName 结构体字段可以用 `list:"key"` 起一个匹配用的别名
const tagName = "list"

// matches 判断 v 是否在 pattern 的每个字段上都严格相等
// v 必须是结构体或指向结构体的指针，未导出的字段不参与匹配
func matches(v any, pattern Pattern) bool {
	if len(pattern) == 0 {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return false
	}
	for key, expected := range pattern {
		field, ok := lookupField(rv, key)
		if !ok || !field.CanInterface() {
			return false
		}
		if !utils.Equals(field.Interface(), expected) {
			return false
		}
	}
	return true
}

// lookupField 按字段名或标签查找字段，包括嵌入结构体提升上来的字段
func lookupField(rv reflect.Value, key string) (reflect.Value, bool) {
	for _, f := range reflect.VisibleFields(rv.Type()) {
		tag := f.Tag.Get(tagName)
		if f.Name != key && (tag == "" || tag != key) {
			continue
		}
		field, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			// 经过了 nil 的嵌入指针
			return reflect.Value{}, false
		}
		return field, true
	}
	return reflect.Value{}, false
}
