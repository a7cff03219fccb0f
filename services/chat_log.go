package services

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewChatLogger builds the operational conversation log: a rotating
// file holding one line per exchange. This is the only persistence the
// chat path has.
func NewChatLogger(path string) *log.Logger {
	return log.New(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}, "", log.LstdFlags)
}
