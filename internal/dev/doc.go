// Package dev implements the preview server: it serves a built output
// directory, watches it for changes, and pushes live-reload messages to
// connected browsers over WebSocket.
package dev
