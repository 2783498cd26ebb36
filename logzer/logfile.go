package logzer

import (
	"fmt"
	"os"
	"sync"
)

// LogFile provides a rotating log file writer
type LogFile struct {
	mu       sync.Mutex
	file     *os.File
	fileSize int64

	FilePath string
	// MaxSize limits the file size before rotation, 0 disables rotation
	MaxSize int64
	// Rotate keeps that many rotated files.
	// If 0, the oversized file is removed rather than rotated.
	Rotate int
}

// Close implements io.Closer interface
func (f *LogFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// Write implements io.Writer interface
func (f *LogFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		if err := f.open(); err != nil {
			return 0, err
		}
	}
	if f.MaxSize > 0 && f.fileSize+int64(len(p)) > f.MaxSize {
		f.rotate()
		if f.file == nil {
			return 0, fmt.Errorf("could not reopen log file %s", f.FilePath)
		}
	}

	n, err := f.file.Write(p)
	if err != nil {
		/* reopen once, the file may have been moved */
		if err = f.open(); err != nil {
			return 0, err
		}
		n, err = f.file.Write(p)
	}
	if err == nil {
		f.fileSize += int64(n)
	}
	return n, err
}

func (f *LogFile) open() error {
	if f.file != nil {
		_ = f.file.Close()
	}
	file, err := os.OpenFile(f.FilePath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.file = nil
		return err
	}
	f.file = file
	f.fileSize = 0
	if fileInfo, err := file.Stat(); err == nil {
		f.fileSize = fileInfo.Size()
	}
	return nil
}

func (f *LogFile) rotate() {
	filename := f.file.Name()
	_ = f.file.Close()
	f.file = nil
	if f.Rotate == 0 {
		_ = os.Remove(filename)
	} else {
		for i := f.Rotate; i > 0; i-- {
			_ = os.Rename(fmt.Sprintf("%s.%d", filename, i-1), fmt.Sprintf("%s.%d", filename, i))
		}
		_ = os.Rename(filename, fmt.Sprintf("%s.%d", filename, 1))
	}
	_ = f.open()
}
