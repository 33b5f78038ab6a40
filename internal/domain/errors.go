package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("image upload to storage failed")
	ErrOCRFailed            = errors.New("text extraction from image failed")
	ErrReferenceDataLoad    = errors.New("reference database load failed")
	ErrImageAnalysisOff     = errors.New("image analysis is not configured")
)
