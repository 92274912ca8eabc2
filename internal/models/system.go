package models

import "time"

// Task is a scheduled server task.
type Task struct {
	Name          string
	TaskName      string
	Interval      time.Duration
	LastExecution time.Time
	NextExecution time.Time
}

// QueuedEvent is a command waiting in or finished by the server queue.
type QueuedEvent struct {
	ID      int64
	Name    string
	Status  string
	Trigger string
	Queued  time.Time
	Ended   time.Time
}

// LogEntry is a line of the server log.
type LogEntry struct {
	Time    time.Time
	Level   string
	Logger  string
	Message string
}

// Update is an available or installed server release.
type Update struct {
	Version     string
	ReleaseDate time.Time
	Installed   bool
	Changes     []string
}
