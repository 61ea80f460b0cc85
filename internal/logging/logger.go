package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

type compactFormatter struct {
	SystemName string
}

func (f *compactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(fmt.Sprintf(
		"%s %s [%s] %s\n",
		entry.Time.Format("2006-01-02 15:04:05"),
		f.SystemName,
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	))

	return b.Bytes(), nil
}

// Init routes the service log to stdout and a rotated file.
func Init(logFile string) {
	rotated := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	Logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
	Logger.SetFormatter(&compactFormatter{SystemName: "flowdesk"})
	Logger.SetLevel(logrus.InfoLevel)
}
