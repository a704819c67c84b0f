//go:build !debug

package game

const debugAsserts = false
