// Package logger appends generation events to a JSONL file.
package logger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/UPB-SysSec/3MF-Analyzer/internal/redact"
)

// defaultMaxLogBytes is the size at which the log is moved to <path>.1.
const defaultMaxLogBytes = 10 << 20

// Event names.
const (
	EventRunStarted    = "run_started"
	EventGenerated     = "generated"
	EventWriteFailed   = "write_failed"
	EventMissing       = "missing"
	EventUnexpected    = "unexpected"
	EventPublished     = "published"
	EventPublishFailed = "publish_failed"
	EventRunFinished   = "run_finished"
)

type Event struct {
	Timestamp string            `json:"timestamp"`
	Event     string            `json:"event"`
	RunID     string            `json:"run_id,omitempty"`
	Seed      string            `json:"seed,omitempty"`
	TestID    string            `json:"test_id,omitempty"`
	Type      string            `json:"type,omitempty"`
	Path      string            `json:"path,omitempty"`
	Validity  map[string]string `json:"validity,omitempty"`
	Count     int               `json:"count,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type EventLogger struct {
	file *os.File
	run  string
	mu   sync.Mutex
}

// New opens path for appending. A file that already reached the size limit
// is rotated first.
func New(path string) (*EventLogger, error) {
	if err := rotate(path, defaultMaxLogBytes); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &EventLogger{file: file}, nil
}

// SetRun tags every following event that has no run id with id.
func (l *EventLogger) SetRun(id string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.run = id
	l.mu.Unlock()
}

func rotate(path string, limit int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	return nil
}

// Log writes one event. A nil logger discards events.
func (l *EventLogger) Log(event Event) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if event.RunID == "" {
		event.RunID = l.run
	}
	// Paths may embed endpoint URLs, errors may embed credentials.
	event.Path = redact.Redact(event.Path)
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *EventLogger) Close() error {
	if l != nil && l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Read parses every event in a JSONL log. Lines that are not valid JSON
// are skipped.
func Read(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	return events, scanner.Err()
}
