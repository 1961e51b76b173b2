// File: utils/constants.go
package utils

import "time"

// GeocodeCachePrefix is the prefix used for Redis geocode cache keys.
const GeocodeCachePrefix = "geo:"

// ChatContextPrefix is the prefix used for Redis chat history keys.
const ChatContextPrefix = "chat:ctx:"

// ChatContextTTL is the time-to-live for a stored chat conversation.
const ChatContextTTL = 30 * time.Minute

// MaxChatHistory bounds how many prior turns are replayed to the model.
const MaxChatHistory = 20

// RequestIDKey is the gin context key (and response header) carrying the request id.
const RequestIDKey = "X-Request-ID"
