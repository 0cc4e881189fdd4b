// Package util provides common utilities including colour decoding, logging
// helpers, credential fingerprints and file system locations.
package util

import "go.uber.org/zap"

// LogError logs an error with context if it is non-nil.
func LogError(logger *zap.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, zap.Error(err))
	}
}
