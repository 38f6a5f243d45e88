package utils

import "strings"

// AddToLogMessage appends one line to a per-request log builder. Handlers
// accumulate their trace here and print it once at the end of the request.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}
