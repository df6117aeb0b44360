package core

import (
	"sync"
	"time"
)

// Entry represents a single log record
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Level = InfoLevel
	e.Message = ""
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}
