// Package fileutil provides file writing helpers.
package fileutil
