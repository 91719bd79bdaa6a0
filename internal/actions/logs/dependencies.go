package logs

import (
	"os"
	"time"
)

type Deps struct {
	LogFilePath  func() string
	ReadFile     func(string) ([]byte, error)
	Stat         func(string) (os.FileInfo, error)
	OpenFile     func(string, int, os.FileMode) (*os.File, error)
	Truncate     func() error
	PollInterval time.Duration
}

// NewDeps reads the log at path. truncate empties it; it should go through
// the open logger so its file offset stays valid.
func NewDeps(path string, truncate func() error) Deps {
	return Deps{
		LogFilePath:  func() string { return path },
		ReadFile:     os.ReadFile,
		Stat:         os.Stat,
		OpenFile:     os.OpenFile,
		Truncate:     truncate,
		PollInterval: 500 * time.Millisecond,
	}
}
