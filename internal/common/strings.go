package common

// UnknownStr is the name printed for enum values outside their declared range.
const UnknownStr = "unknown"
