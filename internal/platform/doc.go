// Package platform identifies the host operating system family and
// selects which provider serves it.
package platform
