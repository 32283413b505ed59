package imap

// ParseQuota exposes parseQuota for testing
var ParseQuota = parseQuota
