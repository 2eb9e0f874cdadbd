// Package log is a small levelled logger for the command line tools.
package log

import (
	"fmt"
	glog "log"
	"os"
	"path"
	"runtime"
)

// Verbose enables Debug and Debugf output.
var Verbose bool

var infoLogger, warningLogger, errorLogger, debugLogger *glog.Logger

func init() {
	infoLogger = glog.New(os.Stderr, "INFO: ", glog.Ldate|glog.Ltime)
	warningLogger = glog.New(os.Stderr, "WARNING: ", glog.Ldate|glog.Ltime)
	errorLogger = glog.New(os.Stderr, "ERROR: ", glog.Ldate|glog.Ltime)
	debugLogger = glog.New(os.Stderr, "DEBUG: ", glog.Ldate|glog.Ltime)
}

func caller() string {
	_, file, line, _ := runtime.Caller(3)
	return fmt.Sprintf("%s:%d: ", path.Base(file), line)
}

func formatNormal(args ...any) string {
	return caller() + fmt.Sprint(args...)
}

func formatFormat(f string, args ...any) string {
	return caller() + fmt.Sprintf(f, args...)
}

func Info(args ...any)               { infoLogger.Println(formatNormal(args...)) }
func Infof(f string, args ...any)    { infoLogger.Println(formatFormat(f, args...)) }
func Warning(args ...any)            { warningLogger.Println(formatNormal(args...)) }
func Warningf(f string, args ...any) { warningLogger.Println(formatFormat(f, args...)) }
func Error(args ...any)              { errorLogger.Println(formatNormal(args...)) }
func Errorf(f string, args ...any)   { errorLogger.Println(formatFormat(f, args...)) }
func Debug(args ...any) {
	if Verbose {
		debugLogger.Println(formatNormal(args...))
	}
}
func Debugf(f string, args ...any) {
	if Verbose {
		debugLogger.Println(formatFormat(f, args...))
	}
}
