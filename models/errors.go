package models

import "errors"

var (
	// ErrMetricUnavailable is returned when the host CPU utilisation cannot be read.
	ErrMetricUnavailable = errors.New("metric unavailable")
	// ErrQueueUnreachable is returned when the queue depth cannot be fetched.
	ErrQueueUnreachable = errors.New("queue unreachable")
	// ErrConfigWrite is returned when the supervisor program configuration
	// cannot be read, parsed or written.
	ErrConfigWrite = errors.New("config write error")
	// ErrReloadFailed is returned when the supervisor did not accept a reload.
	// The configuration on disk may already be correct.
	ErrReloadFailed = errors.New("reload failed")
)
