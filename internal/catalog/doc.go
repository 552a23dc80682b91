package catalog

// Package catalog implements the read-only client for the remote movie catalog
// (TMDb v3). It issues discover and search requests and reports each outcome as
// a Result that separates "no matches" from "request failed".
