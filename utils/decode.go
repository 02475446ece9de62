package utils

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// StringToIntHookFunc 把字符串转换成 int，Redis hash 和前端传来的数字都可能是字符串
func StringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Int {
			return strconv.Atoi(data.(string))
		}
		return data, nil
	}
}

// JSONStringToSliceHookFunc 以 JSON 字符串存储的字符串列表
func JSONStringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.Slice {
			return data, nil
		}
		s := data.(string)
		if s == "" {
			return []string{}, nil
		}
		var out []string
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Decode 用 json tag 把松散的 map 解码到结构体
func Decode(input interface{}, result interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	hooks = append([]mapstructure.DecodeHookFunc{StringToIntHookFunc()}, hooks...)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(hooks...),
		Result:     result,
		TagName:    "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
