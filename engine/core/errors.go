package core

import (
	"errors"
)

var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrCameraNotFound   = errors.New("camera not found")
	ErrCameraSystemFull = errors.New("camera system is full")
	ErrWatcherClosed    = errors.New("settings watcher closed")
	ErrFrameNotStarted  = errors.New("frame was not started")
)
