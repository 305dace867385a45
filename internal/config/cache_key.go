package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// HistoryKey returns the cache key for the recent-sessions history list.
func (r *CacheKeyStruct) HistoryKey(limit int) string {
	return fmt.Sprintf("history:recent:%d", limit)
}

// SubmitLockKey returns the lock key guarding submissions to a session.
func (r *CacheKeyStruct) SubmitLockKey(sessionID string) string {
	return fmt.Sprintf("session:%s:submit_lock", sessionID)
}

var CacheKey = NewCacheKeyStruct()
