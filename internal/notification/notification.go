// Package notification filters the notification feed by read state and text.
package notification

import (
	"fmt"
	"strings"
)

// Notification is one feed entry.
type Notification struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Date    string `yaml:"date"`
	Read    bool   `yaml:"read"`
}

// Tab selects notifications by read state.
type Tab string

// Tabs
const (
	TabAll    Tab = "All"
	TabUnread Tab = "Unread"
	TabRead   Tab = "Read"
)

// ParseTab accepts All, Unread or Read in any case. An empty string selects TabAll.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TabAll, nil
	case "unread":
		return TabUnread, nil
	case "read":
		return TabRead, nil
	default:
		return "", fmt.Errorf("unknown notification tab %q: expected All, Unread or Read", s)
	}
}

// Filter returns the notifications in tab whose title and message contain
// search, ignoring case. Order is preserved.
func Filter(items []Notification, tab Tab, search string) []Notification {
	needle := strings.ToLower(search)
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		switch tab {
		case TabUnread:
			if n.Read {
				continue
			}
		case TabRead:
			if !n.Read {
				continue
			}
		}
		if needle != "" && !strings.Contains(strings.ToLower(n.Title+" "+n.Message), needle) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MarkAllRead returns a copy of items with every entry read.
func MarkAllRead(items []Notification) []Notification {
	out := make([]Notification, len(items))
	for i, n := range items {
		n.Read = true
		out[i] = n
	}
	return out
}

// UnreadCount returns how many entries are unread.
func UnreadCount(items []Notification) int {
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count
}
