package services

import (
	"log/slog"
	"sync"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is one message delivered to the user
type Notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info("notification", slog.String("kind", NotificationSuccess), slog.String("message", message))
}

func (n *LogNotifier) Error(message string) {
	n.logger.Warn("notification", slog.String("kind", NotificationError), slog.String("message", message))
}

// CollectingNotifier keeps notifications in memory so a request can return them
type CollectingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewCollectingNotifier() *CollectingNotifier {
	return &CollectingNotifier{}
}

func (n *CollectingNotifier) Success(message string) {
	n.add(NotificationSuccess, message)
}

func (n *CollectingNotifier) Error(message string) {
	n.add(NotificationError, message)
}

func (n *CollectingNotifier) add(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, Notification{Kind: kind, Message: message})
}

// Notifications returns a copy of everything collected so far
func (n *CollectingNotifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// Last returns the most recent notification
func (n *CollectingNotifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notifications) == 0 {
		return Notification{}, false
	}
	return n.notifications[len(n.notifications)-1], true
}

// FanoutNotifier delivers every notification to each of its notifiers in order
type FanoutNotifier []Notifier

func (f FanoutNotifier) Success(message string) {
	for _, n := range f {
		n.Success(message)
	}
}

func (f FanoutNotifier) Error(message string) {
	for _, n := range f {
		n.Error(message)
	}
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Error(string)   {}
