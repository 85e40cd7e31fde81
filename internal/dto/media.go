package dto

// MediaURL turns a storage key into the absolute URL clients fetch.
type MediaURL func(key string) string
