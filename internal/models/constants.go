package models

// ============================================================================
// DATE CONSTANTS
// ============================================================================

// DateLayout is the only accepted event date format. ISO-8601 dates sort
// lexicographically, which the upcoming-events filter relies on.
const DateLayout = "2006-01-02"

// ============================================================================
// REPORT DEFAULTS
// ============================================================================

// DefaultUpcomingLimit caps the upcoming events listing
const DefaultUpcomingLimit = 10

// MaxEventNameLength is the longest accepted event name
const MaxEventNameLength = 100
