// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var (
	silence bool
	level   = InfoLevel
	logger  = log.New(os.Stderr, "", 0)
)

type LogLevel uint8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel maps a case-insensitive level name to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	return InfoLevel, errors.Errorf("unknown log level %q", s)
}

// SetLogLevelByString sets the level from its name, falling back to INFO
// for names it does not know.
func SetLogLevelByString(s string) {
	level, _ = ParseLevel(s)
}

// SetLogLevel sets the log level.
func SetLogLevel(v LogLevel) {
	level = v
}

func GetLogLevel() LogLevel {
	return level
}

// SetOutput redirects log lines, stderr by default.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func MuteLogger() {
	silence = true
}

func UnmuteLogger() {
	silence = false
}

func defaultPrint(lvl LogLevel, message string) {
	if silence || lvl < level {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000")
	logger.Print(
		strings.Join([]string{ts, "[" + lvl.String() + "]", message}, " "),
	)
}

var printFunc = defaultPrint

// convenience functions
var (
	Debugf = Debug
	Infof  = Info
	Warnf  = Warn
	Errorf = Error
	Fatalf = Fatal
)

func Debug(format string, v ...any) {
	printFunc(DebugLevel, fmt.Sprintf(format, v...))
}

func Info(format string, v ...any) {
	printFunc(InfoLevel, fmt.Sprintf(format, v...))
}

func Warn(format string, v ...any) {
	printFunc(WarnLevel, color.YellowString(format, v...))
}

func Error(format string, v ...any) {
	printFunc(ErrorLevel, color.RedString(format, v...))
}

func Fatal(format string, v ...any) {
	printFunc(FatalLevel, color.RedString(format, v...))
	os.Exit(1)
}
