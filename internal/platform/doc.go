package platform

// Package platform contains OS/platform integration: where the config file and
// favorites database live, directory creation, and revealing files in the
// system file manager.
