package core

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Record carries everything one render call needs: the payload, the
// severity, the layout configuration, and the caller metadata shown in
// the table header. A Record lives for exactly one render and is then
// returned to the pool.
type Record struct {
	Message   interface{}
	Level     Level
	Width     Width
	Format    Format
	Source    string
	Function  string
	Line      int
	Timestamp string
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File     string
	Stem     string
	Function string
	Line     int
	Defined  bool
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	*r = Record{}
	recordPool.Put(r)
}

// GetCaller retrieves caller information. The Stem is the source file
// name without directory or .go suffix; Function is the bare function
// or method name with a () suffix, package path stripped.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = shortFuncName(fn.Name())
	}

	return CallerInfo{
		File:     file,
		Stem:     strings.TrimSuffix(filepath.Base(file), ".go"),
		Function: funcName,
		Line:     line,
		Defined:  true,
	}
}

// shortFuncName turns "github.com/x/pkg.(*T).Method" into "(*T).Method()".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name + "()"
}
