package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Properties 定义了演示程序的全局配置
type Properties struct {
	LogPath       string `cfg:"log-path"`        // 日志目录，为空只输出到控制台
	LogName       string `cfg:"log-name"`        // 日志文件名
	LogLevel      string `cfg:"log-level"`       // 日志级别
	LogMaxSize    int    `cfg:"log-max-size"`    // 单个日志文件大小上限（MB）
	LogMaxBackups int    `cfg:"log-max-backups"` // 保留的旧日志个数
	LogMaxAge     int    `cfg:"log-max-age"`     // 旧日志保留天数
	LogConsole    bool   `cfg:"log-console"`     // 写文件时是否也输出到控制台

	// 演示用的初始数据
	DemoValues []string `cfg:"demo-values"` // 用逗号分隔
	DemoDelete int64    `cfg:"demo-delete"` // 演示时要删除的值
}

var Props *Properties

func init() {
	Props = defaults()
}

func defaults() *Properties {
	return &Properties{
		LogName:    "linkedlist",
		LogLevel:   "info",
		LogMaxSize: 16,
		DemoValues: []string{"1", "1", "2", "3", "3", "3", "4", "5"},
		DemoDelete: 3,
	}
}

// SetupConfig 读取配置文件并覆盖默认配置
func SetupConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	props, err := parse(f)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	Props = props
	return nil
}

// parse 按行读取 `key value`，# 开头为注释
// 每个字段的错误都会收集起来一起返回
func parse(src io.Reader) (*Properties, error) {
	props := defaults()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var errs error
	t := reflect.TypeOf(props).Elem()
	v := reflect.ValueOf(props).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		if err := setField(v.Field(i), value); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return props, nil
}

func setField(fieldVal reflect.Value, value string) error {
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		fieldVal.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		fieldVal.SetBool(b)
	case reflect.Slice:
		if fieldVal.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fieldVal.Type())
		}
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		fieldVal.Set(reflect.ValueOf(parts))
	default:
		return fmt.Errorf("unsupported type %s", fieldVal.Type())
	}
	return nil
}
