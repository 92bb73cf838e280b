package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		_, _ = w.Write([]byte(line))
	}
	return err
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

var e *logrus.Entry
var once sync.Once

type Logger struct {
	*logrus.Entry
}

func GetLogger() Logger {
	once.Do(initLogger)
	return Logger{e}
}

func (l *Logger) GetLoggerWithField(k string, v interface{}) Logger {
	return Logger{l.WithField(k, v)}
}

// SetDebug switches the shared logger between Info and Debug level.
func SetDebug(debug bool) {
	once.Do(initLogger)
	if debug {
		e.Logger.SetLevel(logrus.DebugLevel)
	} else {
		e.Logger.SetLevel(logrus.InfoLevel)
	}
}

func initLogger() {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			filename := path.Base(frame.File)
			return fmt.Sprintf("%s()", frame.Function), fmt.Sprintf("%s:%d", filename, frame.Line)
		},
		DisableColors: true,
		FullTimestamp: true,
	}

	writers := []io.Writer{os.Stdout}
	if err := os.MkdirAll("logs", 0770); err != nil {
		fmt.Println(err)
	} else if allFile, err := os.OpenFile("logs/all.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640); err != nil {
		fmt.Println(err)
	} else {
		writers = append(writers, allFile)
	}

	l.SetOutput(io.Discard)
	l.AddHook(&writerHook{
		Writer:    writers,
		LogLevels: logrus.AllLevels,
	})
	l.SetLevel(logrus.InfoLevel)

	e = logrus.NewEntry(l)
}
