// Package component defines the lifecycle interfaces implemented by
// long-lived client resources (Start/Stop/Health/Describe).
package component
