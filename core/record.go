package core

import (
	"sync"
	"time"
)

// Record represents a single log event with all its metadata.
//
// Err and Stack are set when the event was logged while handling an
// error; formatters append the trace block for records at ErrorLevel
// or above that carry one.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
	Err     error
	Stack   []byte
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Caller = CallerInfo{}
	r.Err = nil
	r.Stack = nil
	recordPool.Put(r)
}
