package dataset

import "errors"

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrMissingColumn   = errors.New("required column missing from dataset")
	ErrEmptyDataset    = errors.New("dataset has no header")
)
