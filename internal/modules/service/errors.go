package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a missing root entity. Missing children inside a
	// tree never surface as errors; they collapse to empty branches.
	ErrNotFound = errors.New("entity not found")

	// ErrGroupMismatch reports a geo event targeting a group that belongs
	// to a different time series.
	ErrGroupMismatch = errors.New("group does not belong to time series")

	// ErrMediaInUse blocks deleting a media file that presentation items or
	// topics still reference.
	ErrMediaInUse = errors.New("media file is referenced")

	// ErrStorageDisabled is returned for binary operations when the
	// deployment runs without an object store.
	ErrStorageDisabled = errors.New("object storage is not configured")
)

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
