// Package config provides configuration helpers for pamiq-io commands.
package config

import (
	"os"
	"strconv"
)

// Default device configuration.
const (
	DefaultCameraIndex = 0
	DefaultAudioDevice = ""
)

// CameraIndex returns the camera index from the CAMERA_INDEX env var.
// Falls back to the provided default if not set or malformed.
func CameraIndex(defaultIndex int) int {
	if v := os.Getenv("CAMERA_INDEX"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			return idx
		}
	}
	return defaultIndex
}

// AudioDevice returns the audio device name from the AUDIO_DEVICE env var.
// Empty means the system default device.
func AudioDevice() string {
	return os.Getenv("AUDIO_DEVICE")
}

// LogLevel returns the log level from the LOG_LEVEL env var.
// Falls back to "info" if not set.
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
