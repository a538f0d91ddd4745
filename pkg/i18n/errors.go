package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrInvalidCatalogue   = errors.New("invalid translation catalogue")
	ErrParsingCancelled   = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrNoTranslationFiles = errors.New("no translation files found")

	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
)
