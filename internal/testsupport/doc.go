// Package testsupport holds fixtures shared by package tests: temp-dir
// backed configs and article files.
package testsupport
