package storage

import (
	"strconv"
	"time"
)

// Task kinds as persisted in the state blob.
const (
	TaskGenerated = "generated"
	TaskCustom    = "custom"
)

// Task is a single checklist entry. Generated tasks are pure functions
// of the date and are never persisted; custom tasks live in the blob.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// HashID is a 32-bit FNV-1a over the string's code points, rendered in
// base36. Hashing code points rather than bytes keeps ids identical to
// state blobs written by earlier releases, which hashed UTF-16 units.
func HashID(s string) string {
	h := uint32(2166136261)
	for _, r := range s {
		h ^= uint32(r)
		h *= 16777619
	}
	return strconv.FormatUint(uint64(h), 36)
}

// NewCustomTask builds a custom task for a day. The creation timestamp
// is part of the id so duplicate text on the same day stays unique.
func NewCustomTask(dateKey, text string, at time.Time) Task {
	id := HashID(dateKey + ":custom:" + text + ":" + strconv.FormatInt(at.UnixMilli(), 10))
	return Task{ID: id, Text: text, Type: TaskCustom}
}
