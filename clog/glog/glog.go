// Package glog registers github.com/golang/glog as the clog backend.
package glog

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cayleygraph/rdfstore/clog"
)

func init() {
	clog.SetLogger(Logger{})
}

// Logger forwards clog calls to glog, keeping the caller's file and line.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(3, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// SetV updates the -v flag glog reads its verbosity from.
func (Logger) SetV(v int) {
	if err := flagSet("v", fmt.Sprint(v)); err != nil {
		glog.Warningf("cannot change log level: %v", err)
	}
}
