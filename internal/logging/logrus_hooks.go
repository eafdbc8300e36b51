package logging

import (
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// callerDepth is the number of frames between Fire and the function which called the logger
const callerDepth = 9

// ContextHook will add go source information (file, line, func) to every entry
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire goes back the call stack and records which function logged the entry.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pc, file, line, ok := runtime.Caller(callerDepth)
	if !ok {
		return nil
	}

	entry.Data["file"] = path.Base(file)
	entry.Data["line"] = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		entry.Data["func"] = path.Base(fn.Name())
	}
	return nil
}
