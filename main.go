package main

import (
	"os"
	"strconv"

	"linkedList/config"
	"linkedList/datastruct/list"
	"linkedList/lib/logger"

	"go.uber.org/zap"
)

// 配置文件的名字，不存在时使用默认配置
const configFile string = "linkedlist.conf"

type entry struct {
	NumVal int    `list:"numVal"`
	Key    string `list:"key"`
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func main() {
	if fileExists(configFile) {
		if err := config.SetupConfig(configFile); err != nil {
			logger.Fatal(err)
		}
	}
	props := config.Props
	if err := logger.Setup(&logger.Settings{
		Path:       props.LogPath,
		Name:       props.LogName,
		Level:      props.LogLevel,
		MaxSizeMB:  props.LogMaxSize,
		MaxBackups: props.LogMaxBackups,
		MaxAgeDays: props.LogMaxAge,
		Console:    props.LogConsole,
	}); err != nil {
		logger.Fatal(err)
	}
	defer logger.Sync()

	nums := list.New[int64]()
	for _, s := range props.DemoValues {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			logger.Warn("skip demo value ", s, ": ", err)
			continue
		}
		nums.Append(n)
	}
	log := logger.L()
	log.Info("built", zap.Stringer("list", nums), zap.Int("len", nums.Len()))

	if n := nums.Delete(props.DemoDelete); n != nil {
		log.Info("deleted", zap.Int64("value", n.Value()), zap.Stringer("list", nums))
	} else {
		log.Info("nothing to delete", zap.Int64("value", props.DemoDelete))
	}

	nums.Prepend(0).Append(100)
	log.Info("grown", zap.Stringer("list", nums))
	log.Info("reversed", zap.Stringer("list", nums.Reverse()))
	log.Debug("range", zap.Int64s("first-three", nums.Range(0, 2)))

	for nums.Len() > 1 {
		h := nums.DeleteHead()
		t := nums.DeleteTail()
		log.Debug("drain", zap.Int64("head", h.Value()), zap.Int64("tail", t.Value()))
	}
	log.Info("drained", zap.Stringer("list", nums))

	entries := list.New[entry](func(a, b entry) int {
		switch {
		case a.NumVal < b.NumVal:
			return -1
		case a.NumVal > b.NumVal:
			return 1
		}
		return 0
	})
	entries.Append(entry{1, "key1"}).Append(entry{12, "key12"}).Append(entry{-44, "keyLOL"})
	if n := entries.FindMatching(list.Pattern{"key": "keyLOL"}); n != nil {
		log.Info("found by pattern", zap.Int("numVal", n.Value().NumVal))
	}
	if n := entries.FindBy(func(e entry) bool { return e.NumVal > 10 }); n != nil {
		log.Info("found by callback", zap.String("key", n.Value().Key))
	}
}
